package repositories

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	// FindGoalByID retrieves a goal scoped to a workspace.
	FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error)

	// ListGoalsByWorkspace retrieves all goals of a workspace.
	ListGoalsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Goal, error)

	// ListContributionsByGoal retrieves a goal's contributions, newest first.
	ListContributionsByGoal(ctx context.Context, goalID string) ([]domain.GoalContribution, error)

	// SumContributionsByGoal returns the contributed total per goal for a
	// workspace. Goals without contributions are absent from the map.
	SumContributionsByGoal(ctx context.Context, workspaceID string) (map[string]decimal.Decimal, error)
}

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal persists changes to a goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoalWithContributions removes the goal and all of its
	// contributions in a single database transaction (explicit cascade).
	DeleteGoalWithContributions(ctx context.Context, workspaceID, goalID string) error

	// SaveContribution persists a new contribution.
	SaveContribution(ctx context.Context, contribution domain.GoalContribution) error
}

// GoalRepositoryFacade combines all goal repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}

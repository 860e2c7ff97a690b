package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// GoalService manages savings goals and their contributions.
type GoalService interface {
	CreateGoal(ctx context.Context, workspaceID string, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, workspaceID string, goalID string, userID string) (*domain.GoalProgress, error)
	ListGoals(ctx context.Context, workspaceID string, userID string) ([]domain.GoalProgress, error)
	UpdateGoal(ctx context.Context, workspaceID string, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, workspaceID string, goalID string, userID string) error

	AddContribution(ctx context.Context, workspaceID string, goalID string, req dto.AddGoalContributionRequest, userID string) (*domain.GoalContribution, error)
	ListContributions(ctx context.Context, workspaceID string, goalID string, userID string) ([]domain.GoalContribution, error)
}

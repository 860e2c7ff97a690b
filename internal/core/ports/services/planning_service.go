package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// PlanningService manages monthly budget plans. A plan freezes each active
// group's percentage for one month so later edits to group defaults never
// rewrite history.
type PlanningService interface {
	// EnsurePlan returns the plan for the given YYYY-MM month, creating it
	// with snapshots of the current group percentages if it does not exist.
	// Concurrent calls for the same month all observe the same plan.
	EnsurePlan(ctx context.Context, workspaceID string, yearMonth string, userID string) (*domain.MonthlyBudgetPlan, []domain.MonthlyGroupAllocation, error)

	// UpdateMonthlyAllocation overrides one group's frozen percentage for the
	// plan's month only.
	UpdateMonthlyAllocation(ctx context.Context, workspaceID string, yearMonth string, groupID string, req dto.UpdateAllocationRequest, userID string) (*domain.MonthlyGroupAllocation, error)
}

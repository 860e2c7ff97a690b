package repositories

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// PlanReader defines read operations for monthly budget plan data
type PlanReader interface {
	// FindPlan retrieves the plan for a (workspace, yearMonth) pair.
	FindPlan(ctx context.Context, workspaceID, yearMonth string) (*domain.MonthlyBudgetPlan, error)

	// FindAllocationsByPlanID retrieves all allocations of a plan, ordered by
	// the owning group's sort order.
	FindAllocationsByPlanID(ctx context.Context, planID string) ([]domain.MonthlyGroupAllocation, error)
}

// PlanWriter defines write operations for monthly budget plan data
type PlanWriter interface {
	// CreatePlanWithAllocations inserts the plan row and all of its
	// allocations in a single database transaction. The plan insert uses the
	// unique (workspace_id, year_month) constraint with an insert-or-nothing
	// semantic: if another request created the plan first, ErrDuplicate is
	// returned and no allocation rows are written.
	CreatePlanWithAllocations(ctx context.Context, plan domain.MonthlyBudgetPlan, allocations []domain.MonthlyGroupAllocation) error

	// UpsertAllocation creates or overwrites the allocation keyed by
	// (planID, groupID) with the given percent snapshot.
	UpsertAllocation(ctx context.Context, allocation domain.MonthlyGroupAllocation) error
}

// PlanRepositoryFacade combines all plan-related repository interfaces
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}

package repositories

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// BudgetGroupReader defines read operations for budget group data
type BudgetGroupReader interface {
	// FindGroupByID retrieves a group scoped to a workspace.
	FindGroupByID(ctx context.Context, workspaceID, groupID string) (*domain.BudgetGroup, error)

	// ListGroupsByWorkspace retrieves groups of a workspace ordered by sort
	// order. When activeOnly is true, soft-deleted groups are excluded.
	ListGroupsByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetGroup, error)
}

// BudgetGroupWriter defines write operations for budget group data
type BudgetGroupWriter interface {
	// SaveGroup persists a new budget group.
	SaveGroup(ctx context.Context, group domain.BudgetGroup) error

	// UpdateGroup persists changes to a budget group, including its
	// DefaultPercent. Existing monthly snapshots are not touched.
	UpdateGroup(ctx context.Context, group domain.BudgetGroup) error

	// DeactivateGroup soft-deletes a budget group.
	DeactivateGroup(ctx context.Context, workspaceID, groupID, updatedByUserID string) error
}

// BudgetGroupRepositoryFacade combines all budget-group repository interfaces
type BudgetGroupRepositoryFacade interface {
	BudgetGroupReader
	BudgetGroupWriter
}

// BudgetCategoryReader defines read operations for budget category data
type BudgetCategoryReader interface {
	// FindCategoryByID retrieves a category scoped to a workspace.
	FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.BudgetCategory, error)

	// ListCategoriesByWorkspace retrieves categories of a workspace. When
	// activeOnly is true, soft-deleted categories are excluded.
	ListCategoriesByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetCategory, error)
}

// BudgetCategoryWriter defines write operations for budget category data
type BudgetCategoryWriter interface {
	// SaveCategory persists a new budget category.
	SaveCategory(ctx context.Context, category domain.BudgetCategory) error

	// UpdateCategory persists changes to a budget category.
	UpdateCategory(ctx context.Context, category domain.BudgetCategory) error

	// DeactivateCategory soft-deletes a budget category.
	DeactivateCategory(ctx context.Context, workspaceID, categoryID, updatedByUserID string) error
}

// BudgetCategoryRepositoryFacade combines all budget-category repository interfaces
type BudgetCategoryRepositoryFacade interface {
	BudgetCategoryReader
	BudgetCategoryWriter
}

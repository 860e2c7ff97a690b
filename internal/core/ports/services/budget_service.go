package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetService manages budget groups and the categories under them.
type BudgetService interface {
	CreateGroup(ctx context.Context, workspaceID string, req dto.CreateBudgetGroupRequest, userID string) (*domain.BudgetGroup, error)
	GetGroupByID(ctx context.Context, workspaceID string, groupID string, userID string) (*domain.BudgetGroup, error)

	// ListGroups returns active groups plus the result of validating that
	// their default percentages sum to 100 within tolerance. An invalid sum
	// is advisory only and never blocks writes.
	ListGroups(ctx context.Context, workspaceID string, userID string) ([]domain.BudgetGroup, decimal.Decimal, bool, error)

	UpdateGroup(ctx context.Context, workspaceID string, groupID string, req dto.UpdateBudgetGroupRequest, userID string) (*domain.BudgetGroup, error)
	DeactivateGroup(ctx context.Context, workspaceID string, groupID string, userID string) error

	CreateCategory(ctx context.Context, workspaceID string, groupID string, req dto.CreateBudgetCategoryRequest, userID string) (*domain.BudgetCategory, error)
	ListCategories(ctx context.Context, workspaceID string, userID string) ([]domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, workspaceID string, categoryID string, req dto.UpdateBudgetCategoryRequest, userID string) (*domain.BudgetCategory, error)
	DeactivateCategory(ctx context.Context, workspaceID string, categoryID string, userID string) error
}

package dto

import (
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Budget Group DTOs ---

// CreateBudgetGroupRequest defines data for creating a budget group.
type CreateBudgetGroupRequest struct {
	Name           string          `json:"name" binding:"required"`
	Color          string          `json:"color"`
	DefaultPercent decimal.Decimal `json:"defaultPercent" binding:"required"`
	SortOrder      int             `json:"sortOrder"`
}

// UpdateBudgetGroupRequest defines data allowed for updating a budget group.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateBudgetGroupRequest struct {
	Name           *string          `json:"name"`
	Color          *string          `json:"color"`
	DefaultPercent *decimal.Decimal `json:"defaultPercent"`
	SortOrder      *int             `json:"sortOrder"`
}

// BudgetGroupResponse defines data returned for a budget group.
type BudgetGroupResponse struct {
	GroupID        string          `json:"groupID"`
	Name           string          `json:"name"`
	Color          string          `json:"color"`
	DefaultPercent decimal.Decimal `json:"defaultPercent"`
	SortOrder      int             `json:"sortOrder"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToBudgetGroupResponse converts a domain.BudgetGroup to DTO.
func ToBudgetGroupResponse(g *domain.BudgetGroup) BudgetGroupResponse {
	return BudgetGroupResponse{
		GroupID:        g.GroupID,
		Name:           g.Name,
		Color:          g.Color,
		DefaultPercent: g.DefaultPercent,
		SortOrder:      g.SortOrder,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		LastUpdatedAt:  g.LastUpdatedAt,
	}
}

// ListBudgetGroupsResponse wraps the group list with the percentage check so
// clients can surface an allocation warning without recomputing.
type ListBudgetGroupsResponse struct {
	Groups       []BudgetGroupResponse `json:"groups"`
	PercentTotal decimal.Decimal       `json:"percentTotal"`
	PercentValid bool                  `json:"percentValid"`
}

// ToListBudgetGroupsResponse converts groups plus the validation result to DTO.
func ToListBudgetGroupsResponse(groups []domain.BudgetGroup, total decimal.Decimal, valid bool) ListBudgetGroupsResponse {
	list := make([]BudgetGroupResponse, len(groups))
	for i, g := range groups {
		list[i] = ToBudgetGroupResponse(&g)
	}
	return ListBudgetGroupsResponse{Groups: list, PercentTotal: total, PercentValid: valid}
}

// --- Budget Category DTOs ---

// CreateBudgetCategoryRequest defines data for creating a category inside a group.
type CreateBudgetCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBudgetCategoryRequest defines data allowed for updating a category.
type UpdateBudgetCategoryRequest struct {
	Name    *string `json:"name"`
	GroupID *string `json:"groupID"`
}

// BudgetCategoryResponse defines data returned for a budget category.
type BudgetCategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	GroupID       string    `json:"groupID"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBudgetCategoryResponse converts a domain.BudgetCategory to DTO.
func ToBudgetCategoryResponse(c *domain.BudgetCategory) BudgetCategoryResponse {
	return BudgetCategoryResponse{
		CategoryID:    c.CategoryID,
		GroupID:       c.GroupID,
		Name:          c.Name,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListBudgetCategoriesResponse wraps the list of categories.
type ListBudgetCategoriesResponse struct {
	Categories []BudgetCategoryResponse `json:"categories"`
}

// ToListBudgetCategoriesResponse converts a slice of domain.BudgetCategory to DTO.
func ToListBudgetCategoriesResponse(categories []domain.BudgetCategory) ListBudgetCategoriesResponse {
	list := make([]BudgetCategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = ToBudgetCategoryResponse(&c)
	}
	return ListBudgetCategoriesResponse{Categories: list}
}

package models

import "github.com/shopspring/decimal"

// BudgetGroup represents a percentage bucket row.
type BudgetGroup struct {
	GroupID        string          `json:"groupID" db:"group_id"`
	WorkspaceID    string          `json:"workspaceID" db:"workspace_id"`
	Name           string          `json:"name" db:"name"`
	Color          string          `json:"color" db:"color"`
	DefaultPercent decimal.Decimal `json:"defaultPercent" db:"default_percent"`
	SortOrder      int             `json:"sortOrder" db:"sort_order"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// BudgetCategory represents an expense category row.
type BudgetCategory struct {
	CategoryID  string `json:"categoryID" db:"category_id"`
	WorkspaceID string `json:"workspaceID" db:"workspace_id"`
	GroupID     string `json:"groupID" db:"group_id"`
	Name        string `json:"name" db:"name"`
	IsActive    bool   `json:"isActive" db:"is_active"`
	AuditFields
}

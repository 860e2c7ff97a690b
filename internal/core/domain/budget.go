package domain

import "github.com/shopspring/decimal"

// BudgetGroup is a named bucket of spending (e.g., "Essentials") holding a
// default percentage allocation of monthly income. DefaultPercent changes
// apply only to snapshots created afterwards; existing monthly plans keep the
// percentage captured at their creation time.
type BudgetGroup struct {
	GroupID        string          `json:"groupID"`     // Primary Key (e.g., UUID)
	WorkspaceID    string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name           string          `json:"name"`
	Color          string          `json:"color"`          // Display color (hex)
	DefaultPercent decimal.Decimal `json:"defaultPercent"` // 0..100, two decimal places
	SortOrder      int             `json:"sortOrder"`
	IsActive       bool            `json:"isActive"` // Soft-delete flag
	AuditFields
}

// BudgetCategory categorizes expense transactions and belongs to exactly one
// BudgetGroup.
type BudgetCategory struct {
	CategoryID  string `json:"categoryID"`  // Primary Key (e.g., UUID)
	WorkspaceID string `json:"workspaceID"` // FK -> workspaces.workspace_id
	GroupID     string `json:"groupID"`     // FK -> budget_groups.group_id
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"` // Soft-delete flag
	AuditFields
}

package domain

import "github.com/shopspring/decimal"

// MonthlyBudgetPlan is the frozen snapshot container for one calendar month.
// At most one plan exists per (workspace, yearMonth); it is created lazily on
// first access to that month and is never recreated or deleted by normal flow.
type MonthlyBudgetPlan struct {
	PlanID      string `json:"planID"`      // Primary Key (e.g., UUID)
	WorkspaceID string `json:"workspaceID"` // FK -> workspaces.workspace_id
	YearMonth   string `json:"yearMonth"`   // "YYYY-MM", unique together with WorkspaceID
	AuditFields
}

// MonthlyGroupAllocation is a single group's percentage share within one
// month's snapshot. PercentSnapshot is copied from the group's DefaultPercent
// at plan creation time and is only changed by an explicit per-month override.
type MonthlyGroupAllocation struct {
	AllocationID    string          `json:"allocationID"` // Primary Key (e.g., UUID)
	PlanID          string          `json:"planID"`       // FK -> monthly_budget_plans.plan_id
	GroupID         string          `json:"groupID"`      // FK -> budget_groups.group_id
	GroupName       string          `json:"groupName"`    // Joined from budget_groups for display
	PercentSnapshot decimal.Decimal `json:"percentSnapshot"`
	AuditFields
}

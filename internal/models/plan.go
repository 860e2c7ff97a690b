package models

import "github.com/shopspring/decimal"

// MonthlyBudgetPlan represents the frozen snapshot container row for one
// (workspace, yearMonth) pair.
type MonthlyBudgetPlan struct {
	PlanID      string `json:"planID" db:"plan_id"`
	WorkspaceID string `json:"workspaceID" db:"workspace_id"`
	YearMonth   string `json:"yearMonth" db:"year_month"`
	AuditFields
}

// MonthlyGroupAllocation represents one group's percentage share within one
// month's snapshot.
type MonthlyGroupAllocation struct {
	AllocationID    string          `json:"allocationID" db:"allocation_id"`
	PlanID          string          `json:"planID" db:"plan_id"`
	GroupID         string          `json:"groupID" db:"group_id"`
	PercentSnapshot decimal.Decimal `json:"percentSnapshot" db:"percent_snapshot"`
	AuditFields
}

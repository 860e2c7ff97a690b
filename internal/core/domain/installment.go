package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentPlan describes a purchase split into N dated expense
// transactions. Creating a plan generates exactly InstallmentsCount PLANNED
// transactions, one per month starting at FirstDueDate, with the rounding
// remainder carried by the last installment.
type InstallmentPlan struct {
	InstallmentPlanID string          `json:"installmentPlanID"` // Primary Key (e.g., UUID)
	WorkspaceID       string          `json:"workspaceID"`       // FK -> workspaces.workspace_id
	AccountID         string          `json:"accountID"`         // FK -> accounts.account_id
	CategoryID        string          `json:"categoryID"`        // FK -> budget_categories.category_id
	Description       string          `json:"description"`
	TotalAmount       decimal.Decimal `json:"totalAmount"` // Positive value, two decimal places
	InstallmentsCount int             `json:"installmentsCount"`
	FirstDueDate      time.Time       `json:"firstDueDate"`
	AuditFields
}

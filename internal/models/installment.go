package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentPlan represents a purchase split into N dated expense
// transactions.
type InstallmentPlan struct {
	InstallmentPlanID string          `json:"installmentPlanID" db:"installment_plan_id"`
	WorkspaceID       string          `json:"workspaceID" db:"workspace_id"`
	AccountID         string          `json:"accountID" db:"account_id"`
	CategoryID        string          `json:"categoryID" db:"category_id"`
	Description       string          `json:"description" db:"description"`
	TotalAmount       decimal.Decimal `json:"totalAmount" db:"total_amount"`
	InstallmentsCount int             `json:"installmentsCount" db:"installments_count"`
	FirstDueDate      time.Time       `json:"firstDueDate" db:"first_due_date"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a dated monetary movement row.
// Note: Amount uses a precise decimal type; never binary floating point.
type Transaction struct {
	TransactionID     string          `json:"transactionID" db:"transaction_id"`
	WorkspaceID       string          `json:"workspaceID" db:"workspace_id"`
	AccountID         string          `json:"accountID" db:"account_id"`
	CategoryID        *string         `json:"categoryID" db:"category_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Type              string          `json:"type" db:"type"`
	Status            string          `json:"status" db:"status"`
	Date              time.Time       `json:"date" db:"txn_date"`
	Description       string          `json:"description" db:"description"`
	InstallmentPlanID *string         `json:"installmentPlanID" db:"installment_plan_id"`
	InstallmentNumber *int            `json:"installmentNumber" db:"installment_number"`
	AuditFields
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a monetary movement.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// TransactionStatus is the lifecycle state of a transaction.
// PLANNED -> POSTED (mark as paid), PLANNED|POSTED -> VOID (terminal).
// VOID rows are excluded from every aggregate.
type TransactionStatus string

const (
	Posted  TransactionStatus = "POSTED"
	Planned TransactionStatus = "PLANNED"
	Void    TransactionStatus = "VOID"
)

// Transaction is a dated monetary movement within a workspace.
type Transaction struct {
	TransactionID     string            `json:"transactionID"` // Primary Key (e.g., UUID)
	WorkspaceID       string            `json:"workspaceID"`   // FK -> workspaces.workspace_id
	AccountID         string            `json:"accountID"`     // FK -> accounts.account_id
	CategoryID        *string           `json:"categoryID"`    // FK -> budget_categories.category_id; required for EXPENSE by convention
	Amount            decimal.Decimal   `json:"amount"`        // Positive value, two decimal places
	Type              TransactionType   `json:"type"`
	Status            TransactionStatus `json:"status"`
	Date              time.Time         `json:"date"` // Date the movement occurred
	Description       string            `json:"description"`
	InstallmentPlanID *string           `json:"installmentPlanID"` // Set when generated from an installment plan
	InstallmentNumber *int              `json:"installmentNumber"` // 1-based sequence within the plan
	AuditFields
}

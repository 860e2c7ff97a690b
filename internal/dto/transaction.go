package dto

import (
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines data for recording a ledger transaction.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	CategoryID  *string         `json:"categoryID"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Status      string          `json:"status" binding:"omitempty,oneof=POSTED PLANNED"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	TxnDate     time.Time       `json:"txnDate" binding:"required"`
	Description string          `json:"description"`
}

// UpdateTransactionRequest defines data allowed for updating a transaction.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateTransactionRequest struct {
	AccountID   *string          `json:"accountID"`
	CategoryID  *string          `json:"categoryID"`
	Amount      *decimal.Decimal `json:"amount"`
	TxnDate     *time.Time       `json:"txnDate"`
	Description *string          `json:"description"`
}

// UpdateTransactionStatusRequest moves a transaction between states.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=POSTED PLANNED VOID"`
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	AccountID         string          `json:"accountID"`
	CategoryID        *string         `json:"categoryID,omitempty"`
	Type              string          `json:"type"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	TxnDate           time.Time       `json:"txnDate"`
	Description       string          `json:"description"`
	InstallmentPlanID *string         `json:"installmentPlanID,omitempty"`
	InstallmentNumber *int            `json:"installmentNumber,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.TransactionID,
		AccountID:         t.AccountID,
		CategoryID:        t.CategoryID,
		Type:              string(t.Type),
		Status:            string(t.Status),
		Amount:            t.Amount,
		TxnDate:           t.Date,
		Description:       t.Description,
		InstallmentPlanID: t.InstallmentPlanID,
		InstallmentNumber: t.InstallmentNumber,
		CreatedAt:         t.CreatedAt,
		LastUpdatedAt:     t.LastUpdatedAt,
	}
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// fetching the next page. An empty NextToken means the last page was reached.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of transactions to DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: list, NextToken: nextToken}
}

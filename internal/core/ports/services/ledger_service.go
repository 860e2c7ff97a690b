package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// LedgerService manages the transaction ledger of a workspace.
type LedgerService interface {
	RecordTransaction(ctx context.Context, workspaceID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, workspaceID string, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactions returns a page ordered by txn_date then created_at,
	// newest first, along with the cursor token for the next page.
	ListTransactions(ctx context.Context, workspaceID string, limit int, nextToken string, userID string) ([]domain.Transaction, string, error)

	// ListTransactionsByMonth returns all non-VOID transactions whose txn_date
	// falls inside the YYYY-MM calendar month.
	ListTransactionsByMonth(ctx context.Context, workspaceID string, yearMonth string, userID string) ([]domain.Transaction, error)

	UpdateTransaction(ctx context.Context, workspaceID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransactionStatus moves a transaction between PLANNED, POSTED and
	// VOID. VOID is terminal.
	UpdateTransactionStatus(ctx context.Context, workspaceID string, transactionID string, req dto.UpdateTransactionStatusRequest, userID string) (*domain.Transaction, error)
}

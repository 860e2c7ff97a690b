package repositories

import (
	"context"
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction scoped to a workspace.
	FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByWorkspace retrieves a cursor-paginated list of
	// transactions for a workspace, newest first. accountID filters by
	// account when non-empty.
	ListTransactionsByWorkspace(ctx context.Context, workspaceID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByMonth retrieves all transactions of a workspace whose
	// date falls within [from, to).
	ListTransactionsByMonth(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction persists changes to amount, date, category and
	// description of a transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus moves a transaction to a new lifecycle status.
	UpdateTransactionStatus(ctx context.Context, workspaceID, transactionID string, status domain.TransactionStatus, updatedByUserID string, updatedAt time.Time) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

package repositories

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account scoped to a workspace.
	FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error)

	// ListAccountsByWorkspace retrieves all accounts of a workspace.
	ListAccountsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists name/kind changes of an account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount soft-deletes an account. Accounts referenced by
	// transactions are never hard-deleted.
	DeactivateAccount(ctx context.Context, workspaceID, accountID, updatedByUserID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

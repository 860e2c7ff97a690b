package repositories

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// InstallmentReader defines read operations for installment plan data
type InstallmentReader interface {
	// FindInstallmentPlanByID retrieves an installment plan scoped to a workspace.
	FindInstallmentPlanByID(ctx context.Context, workspaceID, installmentPlanID string) (*domain.InstallmentPlan, error)

	// ListInstallmentPlansByWorkspace retrieves all installment plans of a workspace.
	ListInstallmentPlansByWorkspace(ctx context.Context, workspaceID string) ([]domain.InstallmentPlan, error)

	// ListTransactionsByPlan retrieves the plan's generated transactions
	// ordered by installment number.
	ListTransactionsByPlan(ctx context.Context, installmentPlanID string) ([]domain.Transaction, error)

	// CountPostedTransactions returns how many of the plan's generated
	// transactions have been posted.
	CountPostedTransactions(ctx context.Context, installmentPlanID string) (int, error)
}

// InstallmentWriter defines write operations for installment plan data
type InstallmentWriter interface {
	// SaveInstallmentPlan inserts the plan row and all of its generated
	// transactions in a single database transaction: either the full
	// schedule becomes visible or none of it does.
	SaveInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan, transactions []domain.Transaction) error

	// DeleteInstallmentPlan hard-deletes the plan and its PLANNED
	// transactions in a single database transaction. Callers must ensure no
	// generated transaction has been posted.
	DeleteInstallmentPlan(ctx context.Context, workspaceID, installmentPlanID string) error
}

// InstallmentRepositoryFacade combines all installment repository interfaces
type InstallmentRepositoryFacade interface {
	InstallmentReader
	InstallmentWriter
}

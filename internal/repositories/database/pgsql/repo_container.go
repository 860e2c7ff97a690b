package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to the shared
// connection pool and returns them bundled for the service container.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		WorkspaceRepo:   newPgxWorkspaceRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		GroupRepo:       newPgxBudgetGroupRepository(pool),
		CategoryRepo:    newPgxBudgetCategoryRepository(pool),
		PlanRepo:        newPgxPlanRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		InstallmentRepo: newPgxInstallmentRepository(pool),
		GoalRepo:        newPgxGoalRepository(pool),
		SummaryRepo:     newPgxSummaryRepository(pool),
	}
}

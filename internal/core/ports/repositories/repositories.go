package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	WorkspaceRepo   WorkspaceRepositoryFacade
	UserRepo        UserRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	GroupRepo       BudgetGroupRepositoryFacade
	CategoryRepo    BudgetCategoryRepositoryFacade
	PlanRepo        PlanRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	InstallmentRepo InstallmentRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	SummaryRepo     SummaryRepository
}

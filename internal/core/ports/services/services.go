package services

// ServiceContainer holds all service interfaces for dependency injection.
type ServiceContainer struct {
	WorkspaceSvc   WorkspaceService
	UserSvc        UserService
	AuthSvc        AuthService
	AccountSvc     AccountService
	BudgetSvc      BudgetService
	PlanningSvc    PlanningService
	LedgerSvc      LedgerService
	InstallmentSvc InstallmentService
	GoalSvc        GoalService
	SummarySvc     SummaryService
}

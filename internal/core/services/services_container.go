package services

import (
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workspace service first since every other service depends on it for
	// role checks.
	workspaceSvc := NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo)
	container.WorkspaceSvc = workspaceSvc

	authorize := WithWorkspaceAuthorizer(workspaceSvc)

	container.UserSvc = NewUserService(repos.UserRepo)
	container.AuthSvc = NewAuthService(cfg, repos.UserRepo)
	container.AccountSvc = NewAccountService(repos.AccountRepo, authorize)
	container.BudgetSvc = NewBudgetService(repos.GroupRepo, repos.CategoryRepo, authorize)

	planningSvc := NewPlanningService(repos.PlanRepo, repos.GroupRepo, authorize)
	container.PlanningSvc = planningSvc

	container.LedgerSvc = NewLedgerService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, authorize)
	container.InstallmentSvc = NewInstallmentService(repos.InstallmentRepo, repos.AccountRepo, repos.CategoryRepo, authorize)
	container.GoalSvc = NewGoalService(repos.GoalRepo, authorize)
	container.SummarySvc = NewSummaryService(repos.SummaryRepo, repos.GroupRepo, planningSvc, authorize)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.WorkspaceService   = (*workspaceService)(nil)
	_ portssvc.UserService        = (*userService)(nil)
	_ portssvc.AuthService        = (*authService)(nil)
	_ portssvc.AccountService     = (*accountService)(nil)
	_ portssvc.BudgetService      = (*budgetService)(nil)
	_ portssvc.PlanningService    = (*planningService)(nil)
	_ portssvc.LedgerService      = (*ledgerService)(nil)
	_ portssvc.InstallmentService = (*installmentService)(nil)
	_ portssvc.GoalService        = (*goalService)(nil)
	_ portssvc.SummaryService     = (*summaryService)(nil)
)

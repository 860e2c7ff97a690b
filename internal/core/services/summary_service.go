package services

import (
	"context"
	"log/slog"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/utils/yearmonth"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var oneHundred = decimal.NewFromInt(100)

type summaryService struct {
	BaseService
	summaryRepo portsrepo.SummaryRepository
	groupRepo   portsrepo.BudgetGroupReader
	planningSvc portssvc.PlanningService
}

// NewSummaryService creates the budget-vs-actual summary service.
func NewSummaryService(summaryRepo portsrepo.SummaryRepository, groupRepo portsrepo.BudgetGroupReader, planningSvc portssvc.PlanningService, opts ...ServiceOption) *summaryService {
	svc := &summaryService{summaryRepo: summaryRepo, groupRepo: groupRepo, planningSvc: planningSvc}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// GetMonthSummary computes the month's budget-vs-actual view. Group budgets
// are the month's frozen percentages applied to realized POSTED income, so a
// month without income has zero budgets and any spending shows as overspend.
func (s *summaryService) GetMonthSummary(ctx context.Context, workspaceID string, ym string, userID string) (*domain.MonthSummary, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	parsed, err := yearmonth.Parse(ym)
	if err != nil {
		return nil, err
	}
	from, to := parsed.Bounds()

	// Ensure the plan exists so the summary always has frozen percentages to
	// work with, even on a month viewed for the first time.
	_, allocations, err := s.planningSvc.EnsurePlan(ctx, workspaceID, ym, userID)
	if err != nil {
		return nil, err
	}

	var (
		incomeTotal     decimal.Decimal
		expenseTotal    decimal.Decimal
		spendingByGroup map[string]decimal.Decimal
		groups          []domain.BudgetGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeTotal, err = s.summaryRepo.SumPostedAmount(gctx, workspaceID, domain.Income, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		expenseTotal, err = s.summaryRepo.SumPostedAmount(gctx, workspaceID, domain.Expense, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		spendingByGroup, err = s.summaryRepo.SpendingByGroup(gctx, workspaceID, from, to)
		return err
	})
	g.Go(func() error {
		// Include inactive groups so allocations snapshotted before a group
		// was deactivated still render with their name and color.
		var err error
		groups, err = s.groupRepo.ListGroupsByWorkspace(gctx, workspaceID, false)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to aggregate month summary",
			slog.String("workspace_id", workspaceID), slog.String("year_month", ym))
		return nil, err
	}

	groupsByID := make(map[string]domain.BudgetGroup, len(groups))
	for _, grp := range groups {
		groupsByID[grp.GroupID] = grp
	}

	budgets := make([]domain.GroupBudget, len(allocations))
	for i, alloc := range allocations {
		budget := incomeTotal.Mul(alloc.PercentSnapshot).Div(oneHundred).Round(2)
		spent := spendingByGroup[alloc.GroupID]

		name := alloc.GroupName
		color := ""
		if grp, ok := groupsByID[alloc.GroupID]; ok {
			name = grp.Name
			color = grp.Color
		}

		budgets[i] = domain.GroupBudget{
			GroupID:         alloc.GroupID,
			GroupName:       name,
			Color:           color,
			PercentSnapshot: alloc.PercentSnapshot,
			BudgetAmount:    budget,
			SpentAmount:     spent,
			RemainingAmount: budget.Sub(spent),
		}
	}

	return &domain.MonthSummary{
		YearMonth:    ym,
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Balance:      incomeTotal.Sub(expenseTotal),
		BudgetGroups: budgets,
	}, nil
}

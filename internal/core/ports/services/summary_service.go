package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
)

// SummaryService computes the budget-vs-actual view of a month. Budgets are
// derived from the month's frozen allocation percentages applied to actual
// POSTED income, so a month with no income has zero budgets.
type SummaryService interface {
	GetMonthSummary(ctx context.Context, workspaceID string, yearMonth string, userID string) (*domain.MonthSummary, error)
}

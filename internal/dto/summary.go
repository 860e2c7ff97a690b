package dto

import (
	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupBudgetResponse defines the budget-vs-actual line for one group.
type GroupBudgetResponse struct {
	GroupID         string          `json:"groupID"`
	GroupName       string          `json:"groupName"`
	Color           string          `json:"color"`
	PercentSnapshot decimal.Decimal `json:"percentSnapshot"`
	BudgetAmount    decimal.Decimal `json:"budgetAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}

// MonthSummaryResponse defines the full budget-vs-actual view of one month.
type MonthSummaryResponse struct {
	YearMonth    string                `json:"yearMonth"`
	IncomeTotal  decimal.Decimal       `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal       `json:"expenseTotal"`
	Balance      decimal.Decimal       `json:"balance"`
	BudgetGroups []GroupBudgetResponse `json:"budgetGroups"`
}

// ToMonthSummaryResponse converts a domain.MonthSummary to DTO.
func ToMonthSummaryResponse(s *domain.MonthSummary) MonthSummaryResponse {
	groups := make([]GroupBudgetResponse, len(s.BudgetGroups))
	for i, g := range s.BudgetGroups {
		groups[i] = GroupBudgetResponse{
			GroupID:         g.GroupID,
			GroupName:       g.GroupName,
			Color:           g.Color,
			PercentSnapshot: g.PercentSnapshot,
			BudgetAmount:    g.BudgetAmount,
			SpentAmount:     g.SpentAmount,
			RemainingAmount: g.RemainingAmount,
		}
	}
	return MonthSummaryResponse{
		YearMonth:    s.YearMonth,
		IncomeTotal:  s.IncomeTotal,
		ExpenseTotal: s.ExpenseTotal,
		Balance:      s.Balance,
		BudgetGroups: groups,
	}
}

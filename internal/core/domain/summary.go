package domain

import "github.com/shopspring/decimal"

// GroupBudget is the budget-vs-actual rollup for one budget group in one
// month. BudgetAmount is derived from the month's realized income, so a month
// with no income yields a zero budget regardless of the allocated percentage.
// RemainingAmount may be negative, signaling overspend.
type GroupBudget struct {
	GroupID         string          `json:"groupID"`
	GroupName       string          `json:"groupName"`
	Color           string          `json:"color"`
	PercentSnapshot decimal.Decimal `json:"percentSnapshot"`
	BudgetAmount    decimal.Decimal `json:"budgetAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}

// MonthSummary is the full budget summary for one workspace and month.
type MonthSummary struct {
	YearMonth    string          `json:"yearMonth"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"` // incomeTotal - expenseTotal
	BudgetGroups []GroupBudget   `json:"budgetGroups"`
}

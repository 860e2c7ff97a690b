package repositories

import (
	"context"
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryRepository defines the read-only aggregation queries over the
// ledger. All sums consider POSTED transactions only and are bounded by a
// [from, to) calendar-month window.
type SummaryRepository interface {
	// SumPostedAmount returns the total amount of POSTED transactions of the
	// given type within the window.
	SumPostedAmount(ctx context.Context, workspaceID string, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error)

	// SpendingByGroup returns POSTED expense totals within the window grouped
	// by the owning budget group of each transaction's category. Transactions
	// without a category contribute to no group.
	SpendingByGroup(ctx context.Context, workspaceID string, from, to time.Time) (map[string]decimal.Decimal, error)
}

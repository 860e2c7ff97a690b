package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxSummaryRepository struct {
	pool *pgxpool.Pool
}

func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepository {
	return &PgxSummaryRepository{pool: pool}
}

var _ portsrepo.SummaryRepository = (*PgxSummaryRepository)(nil)

// SumPostedAmount returns the total amount of POSTED transactions of the
// given type within the [from, to) window.
func (r *PgxSummaryRepository) SumPostedAmount(ctx context.Context, workspaceID string, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE workspace_id = $1
		  AND type = $2
		  AND status = $3
		  AND txn_date >= $4 AND txn_date < $5;
	`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, workspaceID, string(txnType), string(domain.Posted), from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum posted %s transactions for workspace %s: %w", txnType, workspaceID, err)
	}
	return total, nil
}

// SpendingByGroup returns POSTED expense totals within the [from, to) window
// grouped by the owning budget group of each transaction's category.
// Transactions without a category contribute to no group.
func (r *PgxSummaryRepository) SpendingByGroup(ctx context.Context, workspaceID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT c.group_id, COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN budget_categories c ON c.category_id = t.category_id
		WHERE t.workspace_id = $1
		  AND t.type = $2
		  AND t.status = $3
		  AND t.txn_date >= $4 AND t.txn_date < $5
		GROUP BY c.group_id;
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, string(domain.Expense), string(domain.Posted), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending by group for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	spending := make(map[string]decimal.Decimal)
	for rows.Next() {
		var groupID string
		var total decimal.Decimal
		if err := rows.Scan(&groupID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan spending row: %w", err)
		}
		spending[groupID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spending rows: %w", err)
	}

	return spending, nil
}

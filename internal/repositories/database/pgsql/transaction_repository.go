package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	"github.com/planwise/budget_planner_app/internal/models"
	"github.com/planwise/budget_planner_app/internal/utils/mapping"
	"github.com/planwise/budget_planner_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, workspace_id, account_id, category_id, amount, type, status, txn_date, description, installment_plan_id, installment_number, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.WorkspaceID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Type,
		&m.Status,
		&m.Date,
		&m.Description,
		&m.InstallmentPlanID,
		&m.InstallmentNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, workspace_id, account_id, category_id, amount, type, status, txn_date, description, installment_plan_id, installment_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.WorkspaceID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.Type,
		m.Status,
		m.Date,
		m.Description,
		m.InstallmentPlanID,
		m.InstallmentNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction scoped to a workspace.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE workspace_id = $1 AND transaction_id = $2;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, workspaceID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// ListTransactionsByWorkspace retrieves a cursor-paginated list of
// transactions, newest first. The cursor encodes the (txn_date, created_at)
// pair of the last row of the previous page.
func (r *PgxTransactionRepository) ListTransactionsByWorkspace(ctx context.Context, workspaceID, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE workspace_id = $1`
	args := []interface{}{workspaceID}

	if accountID != "" {
		args = append(args, accountID)
		query += fmt.Sprintf(` AND account_id = $%d`, len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, cursorDate, cursorCreatedAt)
		query += fmt.Sprintf(` AND (txn_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY txn_date DESC, created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newToken = &token
	}

	return txns, newToken, nil
}

// ListTransactionsByMonth retrieves all transactions of a workspace whose
// date falls within [from, to).
func (r *PgxTransactionRepository) ListTransactionsByMonth(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE workspace_id = $1 AND txn_date >= $2 AND txn_date < $3
		ORDER BY txn_date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query month transactions for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

// UpdateTransaction persists changes to amount, date, category and
// description of a transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET amount = $3, category_id = $4, txn_date = $5, description = $6, last_updated_at = $7, last_updated_by = $8
		WHERE workspace_id = $1 AND transaction_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.WorkspaceID,
		m.TransactionID,
		m.Amount,
		m.CategoryID,
		m.Date,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatus moves a transaction to a new lifecycle status.
// Transition legality is enforced by the service layer.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, workspaceID, transactionID string, status domain.TransactionStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE workspace_id = $1 AND transaction_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query, workspaceID, transactionID, string(status), updatedAt, updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

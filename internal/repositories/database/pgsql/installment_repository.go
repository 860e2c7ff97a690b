package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	"github.com/planwise/budget_planner_app/internal/models"
	"github.com/planwise/budget_planner_app/internal/utils/mapping"
)

type PgxInstallmentRepository struct {
	BaseRepository
}

func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

const installmentPlanColumns = `installment_plan_id, workspace_id, account_id, category_id, description, total_amount, installments_count, first_due_date, created_at, created_by, last_updated_at, last_updated_by`

func scanInstallmentPlan(row pgx.Row) (*models.InstallmentPlan, error) {
	var m models.InstallmentPlan
	err := row.Scan(
		&m.InstallmentPlanID,
		&m.WorkspaceID,
		&m.AccountID,
		&m.CategoryID,
		&m.Description,
		&m.TotalAmount,
		&m.InstallmentsCount,
		&m.FirstDueDate,
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

// FindInstallmentPlanByID retrieves an installment plan scoped to a workspace.
func (r *PgxInstallmentRepository) FindInstallmentPlanByID(ctx context.Context, workspaceID, installmentPlanID string) (*domain.InstallmentPlan, error) {
	query := `SELECT ` + installmentPlanColumns + ` FROM installment_plans WHERE workspace_id = $1 AND installment_plan_id = $2;`

	m, err := scanInstallmentPlan(r.Pool.QueryRow(ctx, query, workspaceID, installmentPlanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find installment plan by ID %s: %w", installmentPlanID, err)
	}

	d := mapping.ToDomainInstallmentPlan(*m)
	return &d, nil
}

// ListInstallmentPlansByWorkspace retrieves all installment plans of a
// workspace, newest first.
func (r *PgxInstallmentRepository) ListInstallmentPlansByWorkspace(ctx context.Context, workspaceID string) ([]domain.InstallmentPlan, error) {
	query := `SELECT ` + installmentPlanColumns + ` FROM installment_plans WHERE workspace_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installment plans for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	plans := []domain.InstallmentPlan{}
	for rows.Next() {
		m, err := scanInstallmentPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment plan row: %w", err)
		}
		plans = append(plans, mapping.ToDomainInstallmentPlan(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment plan rows: %w", err)
	}

	return plans, nil
}

// ListTransactionsByPlan retrieves the plan's generated transactions ordered
// by installment number.
func (r *PgxInstallmentRepository) ListTransactionsByPlan(ctx context.Context, installmentPlanID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE installment_plan_id = $1
		ORDER BY installment_number;
	`
	rows, err := r.Pool.Query(ctx, query, installmentPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for installment plan %s: %w", installmentPlanID, err)
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

// CountPostedTransactions returns how many of the plan's generated
// transactions have been posted.
func (r *PgxInstallmentRepository) CountPostedTransactions(ctx context.Context, installmentPlanID string) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE installment_plan_id = $1 AND status = $2;`

	var count int
	err := r.Pool.QueryRow(ctx, query, installmentPlanID, string(domain.Posted)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posted transactions for installment plan %s: %w", installmentPlanID, err)
	}
	return count, nil
}

// SaveInstallmentPlan inserts the plan row and all of its generated
// transactions in a single database transaction: either the full schedule
// becomes visible or none of it does.
func (r *PgxInstallmentRepository) SaveInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	planQuery := `
		INSERT INTO installment_plans (installment_plan_id, workspace_id, account_id, category_id, description, total_amount, installments_count, first_due_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	mPlan := mapping.ToModelInstallmentPlan(plan)
	var categoryID interface{}
	if mPlan.CategoryID != "" {
		categoryID = mPlan.CategoryID
	}
	_, err = tx.Exec(ctx, planQuery,
		mPlan.InstallmentPlanID,
		mPlan.WorkspaceID,
		mPlan.AccountID,
		categoryID,
		mPlan.Description,
		mPlan.TotalAmount,
		mPlan.InstallmentsCount,
		mPlan.FirstDueDate,
		mPlan.CreatedAt,
		mPlan.CreatedBy,
		mPlan.LastUpdatedAt,
		mPlan.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: installment plan with ID %s already exists", apperrors.ErrDuplicate, mPlan.InstallmentPlanID)
		}
		return fmt.Errorf("failed to insert installment plan %s: %w", mPlan.InstallmentPlanID, err)
	}

	txnQuery := `
		INSERT INTO transactions (transaction_id, workspace_id, account_id, category_id, amount, type, status, txn_date, description, installment_plan_id, installment_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
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
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("failed to insert installment transaction %s: %w", transactions[i].TransactionID, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close installment transaction batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteInstallmentPlan hard-deletes the plan and its PLANNED transactions in
// a single database transaction. Callers must ensure no generated
// transaction has been posted.
func (r *PgxInstallmentRepository) DeleteInstallmentPlan(ctx context.Context, workspaceID, installmentPlanID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteTxns := `
		DELETE FROM transactions
		WHERE workspace_id = $1 AND installment_plan_id = $2 AND status = $3;
	`
	if _, err := tx.Exec(ctx, deleteTxns, workspaceID, installmentPlanID, string(domain.Planned)); err != nil {
		return fmt.Errorf("failed to delete transactions of installment plan %s: %w", installmentPlanID, err)
	}

	deletePlan := `DELETE FROM installment_plans WHERE workspace_id = $1 AND installment_plan_id = $2;`
	cmdTag, err := tx.Exec(ctx, deletePlan, workspaceID, installmentPlanID)
	if err != nil {
		return fmt.Errorf("failed to delete installment plan %s: %w", installmentPlanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

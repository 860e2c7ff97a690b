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

type PgxPlanRepository struct {
	BaseRepository
}

func newPgxPlanRepository(pool *pgxpool.Pool) portsrepo.PlanRepositoryFacade {
	return &PgxPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

// FindPlan retrieves the plan for a (workspace, yearMonth) pair.
func (r *PgxPlanRepository) FindPlan(ctx context.Context, workspaceID, yearMonth string) (*domain.MonthlyBudgetPlan, error) {
	query := `
		SELECT plan_id, workspace_id, year_month, created_at, created_by, last_updated_at, last_updated_by
		FROM monthly_budget_plans
		WHERE workspace_id = $1 AND year_month = $2;
	`
	var m models.MonthlyBudgetPlan
	err := r.Pool.QueryRow(ctx, query, workspaceID, yearMonth).Scan(
		&m.PlanID,
		&m.WorkspaceID,
		&m.YearMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan for workspace %s month %s: %w", workspaceID, yearMonth, err)
	}

	d := mapping.ToDomainMonthlyBudgetPlan(m)
	return &d, nil
}

// FindAllocationsByPlanID retrieves all allocations of a plan, ordered by the
// owning group's sort order. The group name is joined in for display.
func (r *PgxPlanRepository) FindAllocationsByPlanID(ctx context.Context, planID string) ([]domain.MonthlyGroupAllocation, error) {
	query := `
		SELECT a.allocation_id, a.plan_id, a.group_id, g.name, a.percent_snapshot, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		FROM monthly_group_allocations a
		JOIN budget_groups g ON g.group_id = a.group_id
		WHERE a.plan_id = $1
		ORDER BY g.sort_order, g.name;
	`
	rows, err := r.Pool.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for plan %s: %w", planID, err)
	}
	defer rows.Close()

	allocations := []domain.MonthlyGroupAllocation{}
	for rows.Next() {
		var m models.MonthlyGroupAllocation
		var groupName string
		err := rows.Scan(
			&m.AllocationID,
			&m.PlanID,
			&m.GroupID,
			&groupName,
			&m.PercentSnapshot,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation row: %w", err)
		}
		d := mapping.ToDomainMonthlyGroupAllocation(m)
		d.GroupName = groupName
		allocations = append(allocations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allocation rows: %w", err)
	}

	return allocations, nil
}

// CreatePlanWithAllocations inserts the plan row and all of its allocations
// in a single database transaction. The plan insert relies on the unique
// (workspace_id, year_month) constraint: if another request created the plan
// first, ErrDuplicate is returned and no allocation rows are written.
func (r *PgxPlanRepository) CreatePlanWithAllocations(ctx context.Context, plan domain.MonthlyBudgetPlan, allocations []domain.MonthlyGroupAllocation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	planQuery := `
		INSERT INTO monthly_budget_plans (plan_id, workspace_id, year_month, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (workspace_id, year_month) DO NOTHING;
	`
	mPlan := mapping.ToModelMonthlyBudgetPlan(plan)
	cmdTag, err := tx.Exec(ctx, planQuery,
		mPlan.PlanID,
		mPlan.WorkspaceID,
		mPlan.YearMonth,
		mPlan.CreatedAt,
		mPlan.CreatedBy,
		mPlan.LastUpdatedAt,
		mPlan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan for workspace %s month %s: %w", mPlan.WorkspaceID, mPlan.YearMonth, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Lost the race: another request snapshotted this month first.
		return fmt.Errorf("%w: plan for month %s already exists", apperrors.ErrDuplicate, mPlan.YearMonth)
	}

	allocQuery := `
		INSERT INTO monthly_group_allocations (allocation_id, plan_id, group_id, percent_snapshot, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, alloc := range allocations {
		m := mapping.ToModelMonthlyGroupAllocation(alloc)
		batch.Queue(allocQuery,
			m.AllocationID,
			m.PlanID,
			m.GroupID,
			m.PercentSnapshot,
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
				batchErr = fmt.Errorf("failed to insert allocation for group %s: %w", allocations[i].GroupID, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close allocation insert batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}

// UpsertAllocation creates or overwrites the allocation keyed by
// (planID, groupID) with the given percent snapshot.
func (r *PgxPlanRepository) UpsertAllocation(ctx context.Context, allocation domain.MonthlyGroupAllocation) error {
	query := `
		INSERT INTO monthly_group_allocations (allocation_id, plan_id, group_id, percent_snapshot, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (plan_id, group_id) DO UPDATE
		SET percent_snapshot = EXCLUDED.percent_snapshot,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	m := mapping.ToModelMonthlyGroupAllocation(allocation)
	_, err := r.Pool.Exec(ctx, query,
		m.AllocationID,
		m.PlanID,
		m.GroupID,
		m.PercentSnapshot,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert allocation for plan %s group %s: %w", m.PlanID, m.GroupID, err)
	}
	return nil
}

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
)

type PgxBudgetGroupRepository struct {
	pool *pgxpool.Pool
}

func newPgxBudgetGroupRepository(pool *pgxpool.Pool) portsrepo.BudgetGroupRepositoryFacade {
	return &PgxBudgetGroupRepository{pool: pool}
}

var _ portsrepo.BudgetGroupRepositoryFacade = (*PgxBudgetGroupRepository)(nil)

const budgetGroupColumns = `group_id, workspace_id, name, color, default_percent, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBudgetGroup(row pgx.Row) (*models.BudgetGroup, error) {
	var m models.BudgetGroup
	err := row.Scan(
		&m.GroupID,
		&m.WorkspaceID,
		&m.Name,
		&m.Color,
		&m.DefaultPercent,
		&m.SortOrder,
		&m.IsActive,
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

// SaveGroup inserts a new budget group.
func (r *PgxBudgetGroupRepository) SaveGroup(ctx context.Context, group domain.BudgetGroup) error {
	m := mapping.ToModelBudgetGroup(group)

	query := `
		INSERT INTO budget_groups (group_id, workspace_id, name, color, default_percent, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GroupID,
		m.WorkspaceID,
		m.Name,
		m.Color,
		m.DefaultPercent,
		m.SortOrder,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: budget group with ID %s already exists", apperrors.ErrDuplicate, m.GroupID)
		}
		return fmt.Errorf("failed to save budget group %s: %w", m.GroupID, err)
	}
	return nil
}

// FindGroupByID retrieves a group scoped to a workspace.
func (r *PgxBudgetGroupRepository) FindGroupByID(ctx context.Context, workspaceID, groupID string) (*domain.BudgetGroup, error) {
	query := `SELECT ` + budgetGroupColumns + ` FROM budget_groups WHERE workspace_id = $1 AND group_id = $2;`

	m, err := scanBudgetGroup(r.pool.QueryRow(ctx, query, workspaceID, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget group by ID %s: %w", groupID, err)
	}

	d := mapping.ToDomainBudgetGroup(*m)
	return &d, nil
}

// ListGroupsByWorkspace retrieves groups of a workspace ordered by sort
// order. When activeOnly is true, soft-deleted groups are excluded.
func (r *PgxBudgetGroupRepository) ListGroupsByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetGroup, error) {
	query := `SELECT ` + budgetGroupColumns + ` FROM budget_groups WHERE workspace_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY sort_order, name;`

	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget groups for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	groups := []domain.BudgetGroup{}
	for rows.Next() {
		m, err := scanBudgetGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget group row: %w", err)
		}
		groups = append(groups, mapping.ToDomainBudgetGroup(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget group rows: %w", err)
	}

	return groups, nil
}

// UpdateGroup persists changes to a budget group, including its
// DefaultPercent. Existing monthly snapshots are not touched.
func (r *PgxBudgetGroupRepository) UpdateGroup(ctx context.Context, group domain.BudgetGroup) error {
	m := mapping.ToModelBudgetGroup(group)

	query := `
		UPDATE budget_groups
		SET name = $3, color = $4, default_percent = $5, sort_order = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $1 AND group_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.WorkspaceID,
		m.GroupID,
		m.Name,
		m.Color,
		m.DefaultPercent,
		m.SortOrder,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget group %s: %w", m.GroupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateGroup soft-deletes a budget group.
func (r *PgxBudgetGroupRepository) DeactivateGroup(ctx context.Context, workspaceID, groupID, updatedByUserID string) error {
	query := `
		UPDATE budget_groups
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE workspace_id = $1 AND group_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, workspaceID, groupID, time.Now().UTC(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate budget group %s: %w", groupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindGroupByID(ctx, workspaceID, groupID); findErr != nil {
			if errors.Is(findErr, apperrors.ErrNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to check budget group %s after deactivation attempt: %w", groupID, findErr)
		}
		return fmt.Errorf("%w: budget group %s is already inactive", apperrors.ErrValidation, groupID)
	}
	return nil
}

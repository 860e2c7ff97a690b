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

type PgxBudgetCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxBudgetCategoryRepository(pool *pgxpool.Pool) portsrepo.BudgetCategoryRepositoryFacade {
	return &PgxBudgetCategoryRepository{pool: pool}
}

var _ portsrepo.BudgetCategoryRepositoryFacade = (*PgxBudgetCategoryRepository)(nil)

const budgetCategoryColumns = `category_id, workspace_id, group_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBudgetCategory(row pgx.Row) (*models.BudgetCategory, error) {
	var m models.BudgetCategory
	err := row.Scan(
		&m.CategoryID,
		&m.WorkspaceID,
		&m.GroupID,
		&m.Name,
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

// SaveCategory inserts a new budget category.
func (r *PgxBudgetCategoryRepository) SaveCategory(ctx context.Context, category domain.BudgetCategory) error {
	m := mapping.ToModelBudgetCategory(category)

	query := `
		INSERT INTO budget_categories (category_id, workspace_id, group_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.WorkspaceID,
		m.GroupID,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: budget category with ID %s already exists", apperrors.ErrDuplicate, m.CategoryID)
		}
		return fmt.Errorf("failed to save budget category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category scoped to a workspace.
func (r *PgxBudgetCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.BudgetCategory, error) {
	query := `SELECT ` + budgetCategoryColumns + ` FROM budget_categories WHERE workspace_id = $1 AND category_id = $2;`

	m, err := scanBudgetCategory(r.pool.QueryRow(ctx, query, workspaceID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget category by ID %s: %w", categoryID, err)
	}

	d := mapping.ToDomainBudgetCategory(*m)
	return &d, nil
}

// ListCategoriesByWorkspace retrieves categories of a workspace. When
// activeOnly is true, soft-deleted categories are excluded.
func (r *PgxBudgetCategoryRepository) ListCategoriesByWorkspace(ctx context.Context, workspaceID string, activeOnly bool) ([]domain.BudgetCategory, error) {
	query := `SELECT ` + budgetCategoryColumns + ` FROM budget_categories WHERE workspace_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	categories := []domain.BudgetCategory{}
	for rows.Next() {
		m, err := scanBudgetCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainBudgetCategory(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget category rows: %w", err)
	}

	return categories, nil
}

// UpdateCategory persists changes to a budget category.
func (r *PgxBudgetCategoryRepository) UpdateCategory(ctx context.Context, category domain.BudgetCategory) error {
	m := mapping.ToModelBudgetCategory(category)

	query := `
		UPDATE budget_categories
		SET group_id = $3, name = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $1 AND category_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.WorkspaceID,
		m.CategoryID,
		m.GroupID,
		m.Name,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCategory soft-deletes a budget category.
func (r *PgxBudgetCategoryRepository) DeactivateCategory(ctx context.Context, workspaceID, categoryID, updatedByUserID string) error {
	query := `
		UPDATE budget_categories
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE workspace_id = $1 AND category_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, workspaceID, categoryID, time.Now().UTC(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate budget category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, findErr := r.FindCategoryByID(ctx, workspaceID, categoryID); findErr != nil {
			if errors.Is(findErr, apperrors.ErrNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to check budget category %s after deactivation attempt: %w", categoryID, findErr)
		}
		return fmt.Errorf("%w: budget category %s is already inactive", apperrors.ErrValidation, categoryID)
	}
	return nil
}

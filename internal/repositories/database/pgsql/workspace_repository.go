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

type PgxWorkspaceRepository struct {
	pool *pgxpool.Pool
}

func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{pool: pool}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceColumns = `workspace_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanWorkspace(row pgx.Row) (*models.Workspace, error) {
	var m models.Workspace
	err := row.Scan(
		&m.WorkspaceID,
		&m.Name,
		&m.Description,
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

// SaveWorkspace inserts a new workspace.
func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)

	query := `
		INSERT INTO workspaces (workspace_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.WorkspaceID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: workspace with ID %s already exists", apperrors.ErrDuplicate, m.WorkspaceID)
		}
		return fmt.Errorf("failed to save workspace %s: %w", m.WorkspaceID, err)
	}
	return nil
}

// FindWorkspaceByID retrieves a specific workspace by its ID.
func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE workspace_id = $1;`

	m, err := scanWorkspace(r.pool.QueryRow(ctx, query, workspaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workspace by ID %s: %w", workspaceID, err)
	}

	d := mapping.ToDomainWorkspace(*m)
	return &d, nil
}

// ListWorkspacesByUserID retrieves all workspaces a user belongs to,
// excluding memberships marked REMOVED.
func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		SELECT w.workspace_id, w.name, w.description, w.is_active, w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
		FROM workspaces w
		JOIN user_workspaces uw ON uw.workspace_id = w.workspace_id
		WHERE uw.user_id = $1 AND uw.role != $2
		ORDER BY w.name;
	`
	rows, err := r.pool.Query(ctx, query, userID, string(domain.RoleRemoved))
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces for user %s: %w", userID, err)
	}
	defer rows.Close()

	workspaces := []domain.Workspace{}
	for rows.Next() {
		m, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		workspaces = append(workspaces, mapping.ToDomainWorkspace(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspace rows: %w", err)
	}

	return workspaces, nil
}

// UpdateWorkspaceActivation toggles the active flag of a workspace.
func (r *PgxWorkspaceRepository) UpdateWorkspaceActivation(ctx context.Context, workspaceID string, isActive bool, updatedByUserID string) error {
	query := `
		UPDATE workspaces
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE workspace_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, workspaceID, isActive, time.Now().UTC(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to update activation for workspace %s: %w", workspaceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddUserToWorkspace adds a user to a workspace with a specific role. Re-adds
// of an existing membership overwrite the role (upsert).
func (r *PgxWorkspaceRepository) AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error {
	query := `
		INSERT INTO user_workspaces (user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workspace_id) DO UPDATE SET role = EXCLUDED.role;
	`
	_, err := r.pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkspaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add user %s to workspace %s: %w", membership.UserID, membership.WorkspaceID, err)
	}
	return nil
}

// FindUserWorkspaceRole retrieves the role of a user in a workspace.
func (r *PgxWorkspaceRepository) FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error) {
	query := `
		SELECT uw.user_id, u.name, uw.workspace_id, uw.role, uw.joined_at
		FROM user_workspaces uw
		JOIN users u ON u.user_id = uw.user_id
		WHERE uw.user_id = $1 AND uw.workspace_id = $2;
	`
	var m models.UserWorkspace
	err := r.pool.QueryRow(ctx, query, userID, workspaceID).Scan(
		&m.UserID,
		&m.UserName,
		&m.WorkspaceID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of user %s in workspace %s: %w", userID, workspaceID, err)
	}

	d := mapping.ToDomainUserWorkspace(m)
	return &d, nil
}

// ListWorkspaceUsers retrieves all memberships for a workspace, excluding
// removed users.
func (r *PgxWorkspaceRepository) ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error) {
	query := `
		SELECT uw.user_id, u.name, uw.workspace_id, uw.role, uw.joined_at
		FROM user_workspaces uw
		JOIN users u ON u.user_id = uw.user_id
		WHERE uw.workspace_id = $1 AND uw.role != $2
		ORDER BY uw.joined_at;
	`
	rows, err := r.pool.Query(ctx, query, workspaceID, string(domain.RoleRemoved))
	if err != nil {
		return nil, fmt.Errorf("failed to query users for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	memberships := []domain.UserWorkspace{}
	for rows.Next() {
		var m models.UserWorkspace
		if err := rows.Scan(&m.UserID, &m.UserName, &m.WorkspaceID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		memberships = append(memberships, mapping.ToDomainUserWorkspace(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}

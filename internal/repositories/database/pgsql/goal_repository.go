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
	"github.com/shopspring/decimal"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, workspace_id, name, target_amount, target_date, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.WorkspaceID,
		&m.Name,
		&m.TargetAmount,
		&m.TargetDate,
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

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		INSERT INTO goals (goal_id, workspace_id, name, target_amount, target_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID,
		m.WorkspaceID,
		m.Name,
		m.TargetAmount,
		m.TargetDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a goal scoped to a workspace.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE workspace_id = $1 AND goal_id = $2;`

	m, err := scanGoal(r.Pool.QueryRow(ctx, query, workspaceID, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	d := mapping.ToDomainGoal(*m)
	return &d, nil
}

// ListGoalsByWorkspace retrieves all goals of a workspace.
func (r *PgxGoalRepository) ListGoalsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE workspace_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, mapping.ToDomainGoal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}

	return goals, nil
}

// UpdateGoal persists changes to a goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)

	query := `
		UPDATE goals
		SET name = $3, target_amount = $4, target_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $1 AND goal_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID,
		m.GoalID,
		m.Name,
		m.TargetAmount,
		m.TargetDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveContribution persists a new contribution.
func (r *PgxGoalRepository) SaveContribution(ctx context.Context, contribution domain.GoalContribution) error {
	m := mapping.ToModelGoalContribution(contribution)

	query := `
		INSERT INTO goal_contributions (contribution_id, goal_id, amount, contribution_date, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContributionID,
		m.GoalID,
		m.Amount,
		m.Date,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contribution %s: %w", m.ContributionID, err)
	}
	return nil
}

// ListContributionsByGoal retrieves a goal's contributions, newest first.
func (r *PgxGoalRepository) ListContributionsByGoal(ctx context.Context, goalID string) ([]domain.GoalContribution, error) {
	query := `
		SELECT contribution_id, goal_id, amount, contribution_date, note, created_at, created_by, last_updated_at, last_updated_by
		FROM goal_contributions
		WHERE goal_id = $1
		ORDER BY contribution_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contributions for goal %s: %w", goalID, err)
	}
	defer rows.Close()

	contributions := []domain.GoalContribution{}
	for rows.Next() {
		var m models.GoalContribution
		err := rows.Scan(
			&m.ContributionID,
			&m.GoalID,
			&m.Amount,
			&m.Date,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution row: %w", err)
		}
		contributions = append(contributions, mapping.ToDomainGoalContribution(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contribution rows: %w", err)
	}

	return contributions, nil
}

// SumContributionsByGoal returns the contributed total per goal for a
// workspace. Goals without contributions are absent from the map.
func (r *PgxGoalRepository) SumContributionsByGoal(ctx context.Context, workspaceID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT c.goal_id, COALESCE(SUM(c.amount), 0)
		FROM goal_contributions c
		JOIN goals g ON g.goal_id = c.goal_id
		WHERE g.workspace_id = $1
		GROUP BY c.goal_id;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contribution sums for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var goalID string
		var total decimal.Decimal
		if err := rows.Scan(&goalID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan contribution sum row: %w", err)
		}
		sums[goalID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contribution sum rows: %w", err)
	}

	return sums, nil
}

// DeleteGoalWithContributions removes the goal and all of its contributions
// in a single database transaction (explicit cascade).
func (r *PgxGoalRepository) DeleteGoalWithContributions(ctx context.Context, workspaceID, goalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleteContributions := `
		DELETE FROM goal_contributions
		WHERE goal_id IN (SELECT goal_id FROM goals WHERE workspace_id = $1 AND goal_id = $2);
	`
	if _, err := tx.Exec(ctx, deleteContributions, workspaceID, goalID); err != nil {
		return fmt.Errorf("failed to delete contributions of goal %s: %w", goalID, err)
	}

	deleteGoal := `DELETE FROM goals WHERE workspace_id = $1 AND goal_id = $2;`
	cmdTag, err := tx.Exec(ctx, deleteGoal, workspaceID, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

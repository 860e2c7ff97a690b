package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates the savings goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, opts ...ServiceOption) *goalService {
	svc := &goalService{goalRepo: goalRepo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

func (s *goalService) CreateGoal(ctx context.Context, workspaceID string, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.TargetAmount.IsPositive() {
		return nil, apperrors.NewValidationError("target amount must be positive")
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		WorkspaceID:  workspaceID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount.Round(2),
		TargetDate:   req.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, workspaceID string, goalID string, userID string) (*domain.GoalProgress, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, workspaceID, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}

	sums, err := s.goalRepo.SumContributionsByGoal(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum goal contributions", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	progress := buildGoalProgress(*goal, sums[goal.GoalID])
	return &progress, nil
}

func (s *goalService) ListGoals(ctx context.Context, workspaceID string, userID string) ([]domain.GoalProgress, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListGoalsByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	sums, err := s.goalRepo.SumContributionsByGoal(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum goal contributions", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	progresses := make([]domain.GoalProgress, len(goals))
	for i, g := range goals {
		progresses[i] = buildGoalProgress(g, sums[g.GoalID])
	}
	return progresses, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, workspaceID string, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, workspaceID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, apperrors.NewValidationError("target amount must be positive")
		}
		goal.TargetAmount = req.TargetAmount.Round(2)
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

// DeleteGoal removes the goal and all of its contributions.
func (s *goalService) DeleteGoal(ctx context.Context, workspaceID string, goalID string, userID string) error {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.goalRepo.FindGoalByID(ctx, workspaceID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoalWithContributions(ctx, workspaceID, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}

	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

func (s *goalService) AddContribution(ctx context.Context, workspaceID string, goalID string, req dto.AddGoalContributionRequest, userID string) (*domain.GoalContribution, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("contribution amount must be positive")
	}

	if _, err := s.goalRepo.FindGoalByID(ctx, workspaceID, goalID); err != nil {
		return nil, err
	}

	now := time.Now()
	contribution := domain.GoalContribution{
		ContributionID: uuid.NewString(),
		GoalID:         goalID,
		Amount:         req.Amount.Round(2),
		Date:           req.Date,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveContribution(ctx, contribution); err != nil {
		s.LogError(ctx, err, "Failed to save contribution", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Contribution added",
		slog.String("goal_id", goalID), slog.String("amount", contribution.Amount.String()))
	return &contribution, nil
}

func (s *goalService) ListContributions(ctx context.Context, workspaceID string, goalID string, userID string) ([]domain.GoalContribution, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	if _, err := s.goalRepo.FindGoalByID(ctx, workspaceID, goalID); err != nil {
		return nil, err
	}

	contributions, err := s.goalRepo.ListContributionsByGoal(ctx, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contributions", slog.String("goal_id", goalID))
		return nil, err
	}
	if contributions == nil {
		contributions = []domain.GoalContribution{}
	}
	return contributions, nil
}

func buildGoalProgress(goal domain.Goal, contributed decimal.Decimal) domain.GoalProgress {
	progress := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		progress = contributed.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return domain.GoalProgress{
		Goal:              goal,
		ContributedAmount: contributed,
		ProgressPercent:   progress,
	}
}

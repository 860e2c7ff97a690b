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
	"github.com/planwise/budget_planner_app/internal/utils/yearmonth"
)

type planningService struct {
	BaseService
	planRepo  portsrepo.PlanRepositoryFacade
	groupRepo portsrepo.BudgetGroupReader
}

// NewPlanningService creates the monthly plan service.
func NewPlanningService(planRepo portsrepo.PlanRepositoryFacade, groupRepo portsrepo.BudgetGroupReader, opts ...ServiceOption) *planningService {
	svc := &planningService{planRepo: planRepo, groupRepo: groupRepo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// EnsurePlan returns the month's plan, creating it on first access with a
// snapshot of the current group percentages. Viewing a month is what brings
// its plan into existence, so READONLY members trigger creation too.
func (s *planningService) EnsurePlan(ctx context.Context, workspaceID string, ym string, userID string) (*domain.MonthlyBudgetPlan, []domain.MonthlyGroupAllocation, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	if _, err := yearmonth.Parse(ym); err != nil {
		return nil, nil, err
	}

	plan, err := s.planRepo.FindPlan(ctx, workspaceID, ym)
	if err == nil {
		allocations, err := s.planRepo.FindAllocationsByPlanID(ctx, plan.PlanID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load plan allocations", slog.String("plan_id", plan.PlanID))
			return nil, nil, err
		}
		return plan, allocations, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find monthly plan", slog.String("year_month", ym))
		return nil, nil, err
	}

	created, err := s.createPlan(ctx, workspaceID, ym, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the creation race; the winner's plan is the plan.
			return s.refetchPlan(ctx, workspaceID, ym)
		}
		return nil, nil, err
	}

	allocations, err := s.planRepo.FindAllocationsByPlanID(ctx, created.PlanID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load plan allocations", slog.String("plan_id", created.PlanID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Monthly plan created",
		slog.String("plan_id", created.PlanID), slog.String("year_month", ym), slog.Int("allocations", len(allocations)))
	return created, allocations, nil
}

func (s *planningService) createPlan(ctx context.Context, workspaceID string, ym string, userID string) (*domain.MonthlyBudgetPlan, error) {
	groups, err := s.groupRepo.ListGroupsByWorkspace(ctx, workspaceID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups for plan snapshot", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	now := time.Now()
	plan := domain.MonthlyBudgetPlan{
		PlanID:      uuid.NewString(),
		WorkspaceID: workspaceID,
		YearMonth:   ym,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	allocations := make([]domain.MonthlyGroupAllocation, len(groups))
	for i, g := range groups {
		allocations[i] = domain.MonthlyGroupAllocation{
			AllocationID:    uuid.NewString(),
			PlanID:          plan.PlanID,
			GroupID:         g.GroupID,
			GroupName:       g.Name,
			PercentSnapshot: g.DefaultPercent,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.planRepo.CreatePlanWithAllocations(ctx, plan, allocations); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *planningService) refetchPlan(ctx context.Context, workspaceID string, ym string) (*domain.MonthlyBudgetPlan, []domain.MonthlyGroupAllocation, error) {
	plan, err := s.planRepo.FindPlan(ctx, workspaceID, ym)
	if err != nil {
		s.LogError(ctx, err, "Failed to refetch plan after duplicate create", slog.String("year_month", ym))
		return nil, nil, err
	}
	allocations, err := s.planRepo.FindAllocationsByPlanID(ctx, plan.PlanID)
	if err != nil {
		return nil, nil, err
	}
	return plan, allocations, nil
}

// UpdateMonthlyAllocation overrides one group's frozen percentage for the
// given month only. The group's default percentage is untouched.
func (s *planningService) UpdateMonthlyAllocation(ctx context.Context, workspaceID string, ym string, groupID string, req dto.UpdateAllocationRequest, userID string) (*domain.MonthlyGroupAllocation, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := validatePercentRange(req.Percent); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, workspaceID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget group not found")
		}
		return nil, err
	}

	plan, allocations, err := s.EnsurePlan(ctx, workspaceID, ym, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	allocation := domain.MonthlyGroupAllocation{
		AllocationID:    uuid.NewString(),
		PlanID:          plan.PlanID,
		GroupID:         groupID,
		GroupName:       group.Name,
		PercentSnapshot: req.Percent.Round(2),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	// Overriding an existing allocation keeps its identity and creation audit.
	for _, existing := range allocations {
		if existing.GroupID == groupID {
			allocation.AllocationID = existing.AllocationID
			allocation.CreatedAt = existing.CreatedAt
			allocation.CreatedBy = existing.CreatedBy
			break
		}
	}

	if err := s.planRepo.UpsertAllocation(ctx, allocation); err != nil {
		s.LogError(ctx, err, "Failed to upsert allocation",
			slog.String("plan_id", plan.PlanID), slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Monthly allocation overridden",
		slog.String("plan_id", plan.PlanID), slog.String("group_id", groupID), slog.String("percent", allocation.PercentSnapshot.String()))
	return &allocation, nil
}

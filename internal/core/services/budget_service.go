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
	"github.com/planwise/budget_planner_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	groupRepo    portsrepo.BudgetGroupRepositoryFacade
	categoryRepo portsrepo.BudgetCategoryRepositoryFacade
}

// NewBudgetService creates the budget group/category service.
func NewBudgetService(groupRepo portsrepo.BudgetGroupRepositoryFacade, categoryRepo portsrepo.BudgetCategoryRepositoryFacade, opts ...ServiceOption) *budgetService {
	svc := &budgetService{groupRepo: groupRepo, categoryRepo: categoryRepo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// validatePercentRange rejects percentages outside [0, 100]. Whether all
// group percentages together sum to 100 is a separate, advisory check.
func validatePercentRange(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return apperrors.NewValidationError("percent must be between 0 and 100")
	}
	return nil
}

func (s *budgetService) CreateGroup(ctx context.Context, workspaceID string, req dto.CreateBudgetGroupRequest, userID string) (*domain.BudgetGroup, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}
	if err := validatePercentRange(req.DefaultPercent); err != nil {
		return nil, err
	}

	now := time.Now()
	group := domain.BudgetGroup{
		GroupID:        uuid.NewString(),
		WorkspaceID:    workspaceID,
		Name:           req.Name,
		Color:          req.Color,
		DefaultPercent: req.DefaultPercent.Round(2),
		SortOrder:      req.SortOrder,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to save budget group", slog.String("group_id", group.GroupID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget group created", slog.String("group_id", group.GroupID))
	return &group, nil
}

func (s *budgetService) GetGroupByID(ctx context.Context, workspaceID string, groupID string, userID string) (*domain.BudgetGroup, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, workspaceID, groupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget group", slog.String("group_id", groupID))
		}
		return nil, err
	}
	return group, nil
}

// ListGroups returns active groups along with the advisory check of their
// default percentages summing to 100.
func (s *budgetService) ListGroups(ctx context.Context, workspaceID string, userID string) ([]domain.BudgetGroup, decimal.Decimal, bool, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, decimal.Zero, false, err
	}

	groups, err := s.groupRepo.ListGroupsByWorkspace(ctx, workspaceID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget groups", slog.String("workspace_id", workspaceID))
		return nil, decimal.Zero, false, err
	}
	if groups == nil {
		groups = []domain.BudgetGroup{}
	}

	percents := make([]decimal.Decimal, len(groups))
	for i, g := range groups {
		percents[i] = g.DefaultPercent
	}
	valid, total := money.ValidatePercentages(percents)

	return groups, total, valid, nil
}

func (s *budgetService) UpdateGroup(ctx context.Context, workspaceID string, groupID string, req dto.UpdateBudgetGroupRequest, userID string) (*domain.BudgetGroup, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, workspaceID, groupID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Color != nil {
		group.Color = *req.Color
	}
	if req.DefaultPercent != nil {
		if err := validatePercentRange(*req.DefaultPercent); err != nil {
			return nil, err
		}
		// Only future snapshots see the new default; existing monthly plans
		// keep their frozen percentages.
		group.DefaultPercent = req.DefaultPercent.Round(2)
	}
	if req.SortOrder != nil {
		group.SortOrder = *req.SortOrder
	}
	group.LastUpdatedAt = time.Now()
	group.LastUpdatedBy = userID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update budget group", slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget group updated", slog.String("group_id", groupID))
	return group, nil
}

func (s *budgetService) DeactivateGroup(ctx context.Context, workspaceID string, groupID string, userID string) error {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.groupRepo.DeactivateGroup(ctx, workspaceID, groupID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate budget group", slog.String("group_id", groupID))
		}
		return err
	}

	s.LogInfo(ctx, "Budget group deactivated", slog.String("group_id", groupID))
	return nil
}

func (s *budgetService) CreateCategory(ctx context.Context, workspaceID string, groupID string, req dto.CreateBudgetCategoryRequest, userID string) (*domain.BudgetCategory, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FindGroupByID(ctx, workspaceID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget group not found")
		}
		return nil, err
	}
	if !group.IsActive {
		return nil, apperrors.NewValidationError("cannot add a category to an inactive group")
	}

	now := time.Now()
	category := domain.BudgetCategory{
		CategoryID:  uuid.NewString(),
		WorkspaceID: workspaceID,
		GroupID:     groupID,
		Name:        req.Name,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save budget category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *budgetService) ListCategories(ctx context.Context, workspaceID string, userID string) ([]domain.BudgetCategory, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategoriesByWorkspace(ctx, workspaceID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget categories", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if categories == nil {
		categories = []domain.BudgetCategory{}
	}
	return categories, nil
}

func (s *budgetService) UpdateCategory(ctx context.Context, workspaceID string, categoryID string, req dto.UpdateBudgetCategoryRequest, userID string) (*domain.BudgetCategory, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.GroupID != nil {
		// Moving a category requires the destination group to exist.
		if _, err := s.groupRepo.FindGroupByID(ctx, workspaceID, *req.GroupID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("destination budget group not found")
			}
			return nil, err
		}
		category.GroupID = *req.GroupID
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update budget category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *budgetService) DeactivateCategory(ctx context.Context, workspaceID string, categoryID string, userID string) error {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.categoryRepo.DeactivateCategory(ctx, workspaceID, categoryID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate budget category", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Budget category deactivated", slog.String("category_id", categoryID))
	return nil
}

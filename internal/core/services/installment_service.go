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
	"github.com/planwise/budget_planner_app/internal/utils/yearmonth"
)

type installmentService struct {
	BaseService
	installmentRepo portsrepo.InstallmentRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.BudgetCategoryReader
}

// NewInstallmentService creates the installment plan service.
func NewInstallmentService(installmentRepo portsrepo.InstallmentRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.BudgetCategoryReader, opts ...ServiceOption) *installmentService {
	svc := &installmentService{installmentRepo: installmentRepo, accountRepo: accountRepo, categoryRepo: categoryRepo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// CreateInstallmentPlan splits a purchase into one PLANNED expense per month.
// The schedule is written atomically with the plan, amounts split to the cent
// with the remainder carried by the final installment.
func (s *installmentService) CreateInstallmentPlan(ctx context.Context, workspaceID string, req dto.CreateInstallmentPlanRequest, userID string) (*domain.InstallmentPlan, []domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, nil, err
	}
	if !req.TotalAmount.IsPositive() {
		return nil, nil, apperrors.NewValidationError("total amount must be positive")
	}

	firstMonth, err := yearmonth.Parse(req.FirstMonth)
	if err != nil {
		return nil, nil, err
	}
	firstDueDate, _ := firstMonth.Bounds()

	account, err := s.accountRepo.FindAccountByID(ctx, workspaceID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, apperrors.NewValidationError("account is inactive")
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, apperrors.NewNotFoundError("budget category not found")
			}
			return nil, nil, err
		}
	}

	amounts, err := money.DistributeAmount(req.TotalAmount, req.Months)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	plan := domain.InstallmentPlan{
		InstallmentPlanID: uuid.NewString(),
		WorkspaceID:       workspaceID,
		AccountID:         req.AccountID,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		TotalAmount:       req.TotalAmount.Round(2),
		InstallmentsCount: req.Months,
		FirstDueDate:      firstDueDate,
		AuditFields:       audit,
	}

	txns := make([]domain.Transaction, req.Months)
	for i := range txns {
		number := i + 1
		var categoryID *string
		if req.CategoryID != "" {
			cid := req.CategoryID
			categoryID = &cid
		}
		planID := plan.InstallmentPlanID
		txns[i] = domain.Transaction{
			TransactionID:     uuid.NewString(),
			WorkspaceID:       workspaceID,
			AccountID:         req.AccountID,
			CategoryID:        categoryID,
			Amount:            amounts[i],
			Type:              domain.Expense,
			Status:            domain.Planned,
			Date:              firstDueDate.AddDate(0, i, 0),
			Description:       req.Description,
			InstallmentPlanID: &planID,
			InstallmentNumber: &number,
			AuditFields:       audit,
		}
	}

	if err := s.installmentRepo.SaveInstallmentPlan(ctx, plan, txns); err != nil {
		s.LogError(ctx, err, "Failed to save installment plan", slog.String("installment_plan_id", plan.InstallmentPlanID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Installment plan created",
		slog.String("installment_plan_id", plan.InstallmentPlanID), slog.Int("installments", req.Months))
	return &plan, txns, nil
}

func (s *installmentService) GetInstallmentPlanByID(ctx context.Context, workspaceID string, planID string, userID string) (*domain.InstallmentPlan, []domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	plan, err := s.installmentRepo.FindInstallmentPlanByID(ctx, workspaceID, planID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find installment plan", slog.String("installment_plan_id", planID))
		}
		return nil, nil, err
	}

	txns, err := s.installmentRepo.ListTransactionsByPlan(ctx, planID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installment transactions", slog.String("installment_plan_id", planID))
		return nil, nil, err
	}
	return plan, txns, nil
}

func (s *installmentService) ListInstallmentPlans(ctx context.Context, workspaceID string, userID string) ([]domain.InstallmentPlan, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	plans, err := s.installmentRepo.ListInstallmentPlansByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installment plans", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if plans == nil {
		plans = []domain.InstallmentPlan{}
	}
	return plans, nil
}

// DeleteInstallmentPlan removes a plan and its PLANNED schedule. Once any
// installment is posted the plan is part of spending history and cannot be
// deleted.
func (s *installmentService) DeleteInstallmentPlan(ctx context.Context, workspaceID string, planID string, userID string) error {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.installmentRepo.FindInstallmentPlanByID(ctx, workspaceID, planID); err != nil {
		return err
	}

	posted, err := s.installmentRepo.CountPostedTransactions(ctx, planID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count posted installments", slog.String("installment_plan_id", planID))
		return err
	}
	if posted > 0 {
		return apperrors.NewValidationError("installment plan has posted transactions and cannot be deleted")
	}

	if err := s.installmentRepo.DeleteInstallmentPlan(ctx, workspaceID, planID); err != nil {
		s.LogError(ctx, err, "Failed to delete installment plan", slog.String("installment_plan_id", planID))
		return err
	}

	s.LogInfo(ctx, "Installment plan deleted", slog.String("installment_plan_id", planID))
	return nil
}

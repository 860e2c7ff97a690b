package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// InstallmentService splits purchases into monthly PLANNED transactions.
type InstallmentService interface {
	// CreateInstallmentPlan creates the plan and one PLANNED expense per month
	// in a single atomic write. Amounts are split to the cent with any
	// remainder carried by the final installment.
	CreateInstallmentPlan(ctx context.Context, workspaceID string, req dto.CreateInstallmentPlanRequest, userID string) (*domain.InstallmentPlan, []domain.Transaction, error)

	GetInstallmentPlanByID(ctx context.Context, workspaceID string, planID string, userID string) (*domain.InstallmentPlan, []domain.Transaction, error)
	ListInstallmentPlans(ctx context.Context, workspaceID string, userID string) ([]domain.InstallmentPlan, error)

	// DeleteInstallmentPlan removes the plan and its PLANNED transactions.
	// Fails with apperrors.ErrValidation if any installment was already POSTED.
	DeleteInstallmentPlan(ctx context.Context, workspaceID string, planID string, userID string) error
}

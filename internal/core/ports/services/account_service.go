package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// AccountService manages money accounts within a workspace.
type AccountService interface {
	CreateAccount(ctx context.Context, workspaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, workspaceID string, accountID string, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, workspaceID string, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, workspaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, workspaceID string, accountID string, userID string) error
}

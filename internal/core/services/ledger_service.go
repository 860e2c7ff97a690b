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

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type ledgerService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.BudgetCategoryReader
}

// NewLedgerService creates the transaction ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.BudgetCategoryReader, opts ...ServiceOption) *ledgerService {
	svc := &ledgerService{txnRepo: txnRepo, accountRepo: accountRepo, categoryRepo: categoryRepo}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

// RecordTransaction validates references and persists a new ledger entry.
// Status defaults to POSTED when omitted.
func (s *ledgerService) RecordTransaction(ctx context.Context, workspaceID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	if err := s.checkAccount(ctx, workspaceID, req.AccountID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, workspaceID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	status := domain.TransactionStatus(req.Status)
	if status == "" {
		status = domain.Posted
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		WorkspaceID:   workspaceID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount.Round(2),
		Type:          domain.TransactionType(req.Type),
		Status:        status,
		Date:          req.TxnDate,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)), slog.String("status", string(txn.Status)))
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, workspaceID string, transactionID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, workspaceID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns one page of the workspace ledger, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, workspaceID string, limit int, nextToken string, userID string) ([]domain.Transaction, string, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, "", err
	}

	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var token *string
	if nextToken != "" {
		token = &nextToken
	}

	txns, next, err := s.txnRepo.ListTransactionsByWorkspace(ctx, workspaceID, "", limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("workspace_id", workspaceID))
		return nil, "", err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	out := ""
	if next != nil {
		out = *next
	}
	return txns, out, nil
}

// ListTransactionsByMonth returns the month's PLANNED and POSTED
// transactions. VOID entries are history, not activity, and are excluded.
func (s *ledgerService) ListTransactionsByMonth(ctx context.Context, workspaceID string, ym string, userID string) ([]domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	parsed, err := yearmonth.Parse(ym)
	if err != nil {
		return nil, err
	}
	from, to := parsed.Bounds()

	txns, err := s.txnRepo.ListTransactionsByMonth(ctx, workspaceID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by month",
			slog.String("workspace_id", workspaceID), slog.String("year_month", ym))
		return nil, err
	}

	visible := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Status != domain.Void {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

// UpdateTransaction edits the mutable fields of a non-VOID transaction.
func (s *ledgerService) UpdateTransaction(ctx context.Context, workspaceID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, workspaceID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.Void {
		return nil, apperrors.NewValidationError("void transactions cannot be edited")
	}

	if req.AccountID != nil {
		if err := s.checkAccount(ctx, workspaceID, *req.AccountID); err != nil {
			return nil, err
		}
		txn.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if err := s.checkCategory(ctx, workspaceID, *req.CategoryID); err != nil {
				return nil, err
			}
			txn.CategoryID = req.CategoryID
		} else {
			txn.CategoryID = nil
		}
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationError("amount must be positive")
		}
		txn.Amount = req.Amount.Round(2)
	}
	if req.TxnDate != nil {
		txn.Date = *req.TxnDate
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// UpdateTransactionStatus moves a transaction through its lifecycle:
// PLANNED -> POSTED, and PLANNED or POSTED -> VOID. VOID is terminal.
func (s *ledgerService) UpdateTransactionStatus(ctx context.Context, workspaceID string, transactionID string, req dto.UpdateTransactionStatusRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, workspaceID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, workspaceID, transactionID)
	if err != nil {
		return nil, err
	}

	target := domain.TransactionStatus(req.Status)
	if txn.Status == target {
		return txn, nil
	}
	if !isAllowedTransition(txn.Status, target) {
		return nil, apperrors.NewValidationError("invalid status transition from " + string(txn.Status) + " to " + string(target))
	}

	now := time.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, workspaceID, transactionID, target, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status", slog.String("transaction_id", transactionID))
		return nil, err
	}

	txn.Status = target
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	s.LogInfo(ctx, "Transaction status updated",
		slog.String("transaction_id", transactionID), slog.String("status", string(target)))
	return txn, nil
}

func isAllowedTransition(from, to domain.TransactionStatus) bool {
	switch from {
	case domain.Planned:
		return to == domain.Posted || to == domain.Void
	case domain.Posted:
		return to == domain.Void
	default: // VOID is terminal
		return false
	}
}

func (s *ledgerService) checkAccount(ctx context.Context, workspaceID, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, workspaceID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("account not found")
		}
		return err
	}
	if !account.IsActive {
		return apperrors.NewValidationError("account is inactive")
	}
	return nil
}

func (s *ledgerService) checkCategory(ctx context.Context, workspaceID, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("budget category not found")
		}
		return err
	}
	return nil
}

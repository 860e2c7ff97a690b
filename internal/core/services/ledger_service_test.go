package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/core/services"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockBudgetCategoryRepository
	service          portssvc.LedgerService

	workspaceID string
	userID      string
	accountID   string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockBudgetCategoryRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *LedgerServiceTestSuite) activeAccount() *domain.Account {
	return &domain.Account{AccountID: suite.accountID, WorkspaceID: suite.workspaceID, Name: "Checking", Kind: domain.AccountBank, IsActive: true}
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_DefaultsToPosted() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Type:      "EXPENSE",
		Amount:    decimal.RequireFromString("42.50"),
		TxnDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.workspaceID, suite.accountID).Return(suite.activeAccount(), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.Posted && txn.Type == domain.Expense &&
			txn.Amount.Equal(decimal.RequireFromString("42.50")) && txn.WorkspaceID == suite.workspaceID
	})).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, txn.Status)
	suite.NotEmpty(txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Type:      "EXPENSE",
		Amount:    decimal.Zero,
		TxnDate:   time.Now(),
	}

	_, err := suite.service.RecordTransaction(ctx, suite.workspaceID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsInactiveAccount() {
	ctx := context.Background()
	inactive := suite.activeAccount()
	inactive.IsActive = false
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(100),
		TxnDate:   time.Now(),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.workspaceID, suite.accountID).Return(inactive, nil).Once()

	_, err := suite.service.RecordTransaction(ctx, suite.workspaceID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransactionStatus_PlannedToPosted() {
	ctx := context.Background()
	txnID := uuid.NewString()
	planned := &domain.Transaction{TransactionID: txnID, WorkspaceID: suite.workspaceID, Status: domain.Planned}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.workspaceID, txnID).Return(planned, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, suite.workspaceID, txnID, domain.Posted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	txn, err := suite.service.UpdateTransactionStatus(ctx, suite.workspaceID, txnID,
		dto.UpdateTransactionStatusRequest{Status: "POSTED"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransactionStatus_PostedCannotRevertToPlanned() {
	ctx := context.Background()
	txnID := uuid.NewString()
	posted := &domain.Transaction{TransactionID: txnID, WorkspaceID: suite.workspaceID, Status: domain.Posted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.workspaceID, txnID).Return(posted, nil).Once()

	_, err := suite.service.UpdateTransactionStatus(ctx, suite.workspaceID, txnID,
		dto.UpdateTransactionStatusRequest{Status: "PLANNED"}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransactionStatus_VoidIsTerminal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	void := &domain.Transaction{TransactionID: txnID, WorkspaceID: suite.workspaceID, Status: domain.Void}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.workspaceID, txnID).Return(void, nil).Once()

	_, err := suite.service.UpdateTransactionStatus(ctx, suite.workspaceID, txnID,
		dto.UpdateTransactionStatusRequest{Status: "POSTED"}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_VoidIsImmutable() {
	ctx := context.Background()
	txnID := uuid.NewString()
	void := &domain.Transaction{TransactionID: txnID, WorkspaceID: suite.workspaceID, Status: domain.Void}
	newDescription := "edited"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.workspaceID, txnID).Return(void, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, suite.workspaceID, txnID,
		dto.UpdateTransactionRequest{Description: &newDescription}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByMonth_ExcludesVoid() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{TransactionID: "t1", Status: domain.Posted},
		{TransactionID: "t2", Status: domain.Void},
		{TransactionID: "t3", Status: domain.Planned},
	}

	suite.mockTxnRepo.On("ListTransactionsByMonth", ctx, suite.workspaceID, from, to).Return(txns, nil).Once()

	visible, err := suite.service.ListTransactionsByMonth(ctx, suite.workspaceID, "2024-03", suite.userID)

	suite.Require().NoError(err)
	suite.Len(visible, 2)
	for _, t := range visible {
		suite.NotEqual(domain.Void, t.Status)
	}
}

func (suite *LedgerServiceTestSuite) TestListTransactions_CapsPageSize() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactionsByWorkspace", ctx, suite.workspaceID, "", 100, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	_, next, err := suite.service.ListTransactions(ctx, suite.workspaceID, 5000, "", suite.userID)

	suite.Require().NoError(err)
	suite.Empty(next)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

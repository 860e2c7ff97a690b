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

type InstallmentServiceTestSuite struct {
	suite.Suite
	mockInstallmentRepo *MockInstallmentRepository
	mockAccountRepo     *MockAccountRepository
	mockCategoryRepo    *MockBudgetCategoryRepository
	service             portssvc.InstallmentService

	workspaceID string
	userID      string
	accountID   string
}

func (suite *InstallmentServiceTestSuite) SetupTest() {
	suite.mockInstallmentRepo = new(MockInstallmentRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockBudgetCategoryRepository)
	suite.service = services.NewInstallmentService(suite.mockInstallmentRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *InstallmentServiceTestSuite) expectActiveAccount(ctx context.Context) {
	account := &domain.Account{AccountID: suite.accountID, WorkspaceID: suite.workspaceID, IsActive: true}
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.workspaceID, suite.accountID).Return(account, nil).Once()
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentPlan_GeneratesMonthlySchedule() {
	ctx := context.Background()
	suite.expectActiveAccount(ctx)

	req := dto.CreateInstallmentPlanRequest{
		AccountID:   suite.accountID,
		Description: "New laptop",
		TotalAmount: decimal.RequireFromString("2999.00"),
		Months:      10,
		FirstMonth:  "2024-03",
	}

	suite.mockInstallmentRepo.On("SaveInstallmentPlan", ctx,
		mock.AnythingOfType("domain.InstallmentPlan"),
		mock.MatchedBy(func(txns []domain.Transaction) bool { return len(txns) == 10 }),
	).Return(nil).Once()

	plan, txns, err := suite.service.CreateInstallmentPlan(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(10, plan.InstallmentsCount)
	suite.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), plan.FirstDueDate)
	suite.Require().Len(txns, 10)

	// Every installment is a PLANNED expense one month after the previous.
	total := decimal.Zero
	for i, txn := range txns {
		suite.Equal(domain.Planned, txn.Status)
		suite.Equal(domain.Expense, txn.Type)
		suite.Equal(time.Date(2024, time.March+time.Month(i), 1, 0, 0, 0, 0, time.UTC).UTC(), txn.Date.UTC())
		suite.Require().NotNil(txn.InstallmentNumber)
		suite.Equal(i+1, *txn.InstallmentNumber)
		suite.Require().NotNil(txn.InstallmentPlanID)
		suite.Equal(plan.InstallmentPlanID, *txn.InstallmentPlanID)
		total = total.Add(txn.Amount)
	}
	// Amounts sum back to the total despite cent rounding.
	suite.True(total.Equal(decimal.RequireFromString("2999.00")))
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentPlan_RemainderOnLastInstallment() {
	ctx := context.Background()
	suite.expectActiveAccount(ctx)

	req := dto.CreateInstallmentPlanRequest{
		AccountID:   suite.accountID,
		Description: "Sofa",
		TotalAmount: decimal.RequireFromString("100.00"),
		Months:      3,
		FirstMonth:  "2024-01",
	}

	suite.mockInstallmentRepo.On("SaveInstallmentPlan", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, txns, err := suite.service.CreateInstallmentPlan(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(txns, 3)
	suite.True(txns[0].Amount.Equal(decimal.RequireFromString("33.33")))
	suite.True(txns[1].Amount.Equal(decimal.RequireFromString("33.33")))
	suite.True(txns[2].Amount.Equal(decimal.RequireFromString("33.34")))
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentPlan_RejectsInvalidFirstMonth() {
	ctx := context.Background()

	req := dto.CreateInstallmentPlanRequest{
		AccountID:   suite.accountID,
		Description: "Phone",
		TotalAmount: decimal.NewFromInt(1200),
		Months:      12,
		FirstMonth:  "2024-3",
	}

	_, _, err := suite.service.CreateInstallmentPlan(ctx, suite.workspaceID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInstallmentRepo.AssertNotCalled(suite.T(), "SaveInstallmentPlan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestDeleteInstallmentPlan_BlockedWhenPosted() {
	ctx := context.Background()
	planID := uuid.NewString()
	plan := &domain.InstallmentPlan{InstallmentPlanID: planID, WorkspaceID: suite.workspaceID}

	suite.mockInstallmentRepo.On("FindInstallmentPlanByID", ctx, suite.workspaceID, planID).Return(plan, nil).Once()
	suite.mockInstallmentRepo.On("CountPostedTransactions", ctx, planID).Return(2, nil).Once()

	err := suite.service.DeleteInstallmentPlan(ctx, suite.workspaceID, planID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInstallmentRepo.AssertNotCalled(suite.T(), "DeleteInstallmentPlan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestDeleteInstallmentPlan_DeletesPlannedSchedule() {
	ctx := context.Background()
	planID := uuid.NewString()
	plan := &domain.InstallmentPlan{InstallmentPlanID: planID, WorkspaceID: suite.workspaceID}

	suite.mockInstallmentRepo.On("FindInstallmentPlanByID", ctx, suite.workspaceID, planID).Return(plan, nil).Once()
	suite.mockInstallmentRepo.On("CountPostedTransactions", ctx, planID).Return(0, nil).Once()
	suite.mockInstallmentRepo.On("DeleteInstallmentPlan", ctx, suite.workspaceID, planID).Return(nil).Once()

	err := suite.service.DeleteInstallmentPlan(ctx, suite.workspaceID, planID, suite.userID)

	suite.Require().NoError(err)
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
}

func TestInstallmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InstallmentServiceTestSuite))
}

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

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo *MockGoalRepository
	service      portssvc.GoalService

	workspaceID string
	userID      string
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()

	_, err := suite.service.CreateGoal(ctx, suite.workspaceID, dto.CreateGoalRequest{Name: "Vacation", TargetAmount: decimal.Zero}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListGoals_ComputesProgress() {
	ctx := context.Background()
	goals := []domain.Goal{
		{GoalID: "goal1", WorkspaceID: suite.workspaceID, Name: "Vacation", TargetAmount: decimal.NewFromInt(1000)},
		{GoalID: "goal2", WorkspaceID: suite.workspaceID, Name: "Emergency fund", TargetAmount: decimal.NewFromInt(5000)},
	}
	sums := map[string]decimal.Decimal{
		"goal1": decimal.RequireFromString("250.00"),
	}

	suite.mockGoalRepo.On("ListGoalsByWorkspace", ctx, suite.workspaceID).Return(goals, nil).Once()
	suite.mockGoalRepo.On("SumContributionsByGoal", ctx, suite.workspaceID).Return(sums, nil).Once()

	progresses, err := suite.service.ListGoals(ctx, suite.workspaceID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progresses, 2)
	suite.True(progresses[0].ContributedAmount.Equal(decimal.RequireFromString("250.00")))
	suite.True(progresses[0].ProgressPercent.Equal(decimal.RequireFromString("25.00")))
	// Goal without contributions reports zero progress.
	suite.True(progresses[1].ContributedAmount.IsZero())
	suite.True(progresses[1].ProgressPercent.IsZero())
}

func (suite *GoalServiceTestSuite) TestAddContribution_ValidatesGoalAndAmount() {
	ctx := context.Background()
	goalID := uuid.NewString()

	_, err := suite.service.AddContribution(ctx, suite.workspaceID, goalID,
		dto.AddGoalContributionRequest{Amount: decimal.NewFromInt(-5), Date: time.Now()}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.workspaceID, goalID).Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.AddContribution(ctx, suite.workspaceID, goalID,
		dto.AddGoalContributionRequest{Amount: decimal.NewFromInt(50), Date: time.Now()}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestAddContribution_Success() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := &domain.Goal{GoalID: goalID, WorkspaceID: suite.workspaceID, TargetAmount: decimal.NewFromInt(1000)}
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.workspaceID, goalID).Return(goal, nil).Once()
	suite.mockGoalRepo.On("SaveContribution", ctx, mock.MatchedBy(func(c domain.GoalContribution) bool {
		return c.GoalID == goalID && c.Amount.Equal(decimal.RequireFromString("99.99")) && c.Date.Equal(date)
	})).Return(nil).Once()

	contribution, err := suite.service.AddContribution(ctx, suite.workspaceID, goalID,
		dto.AddGoalContributionRequest{Amount: decimal.RequireFromString("99.99"), Date: date}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(contribution.ContributionID)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_CascadesContributions() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := &domain.Goal{GoalID: goalID, WorkspaceID: suite.workspaceID}

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.workspaceID, goalID).Return(goal, nil).Once()
	suite.mockGoalRepo.On("DeleteGoalWithContributions", ctx, suite.workspaceID, goalID).Return(nil).Once()

	err := suite.service.DeleteGoal(ctx, suite.workspaceID, goalID, suite.userID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

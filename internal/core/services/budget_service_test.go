package services_test

import (
	"context"
	"testing"

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

type BudgetServiceTestSuite struct {
	suite.Suite
	mockGroupRepo    *MockBudgetGroupRepository
	mockCategoryRepo *MockBudgetCategoryRepository
	service          portssvc.BudgetService

	workspaceID string
	userID      string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockGroupRepo = new(MockBudgetGroupRepository)
	suite.mockCategoryRepo = new(MockBudgetCategoryRepository)
	suite.service = services.NewBudgetService(suite.mockGroupRepo, suite.mockCategoryRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) TestCreateGroup_RejectsPercentOutOfRange() {
	ctx := context.Background()

	for _, percent := range []string{"-0.01", "100.01", "250"} {
		req := dto.CreateBudgetGroupRequest{Name: "Bad", DefaultPercent: decimal.RequireFromString(percent)}
		_, err := suite.service.CreateGroup(ctx, suite.workspaceID, req, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, "percent %s", percent)
	}
	suite.mockGroupRepo.AssertNotCalled(suite.T(), "SaveGroup", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateGroup_PersistsRoundedPercent() {
	ctx := context.Background()
	req := dto.CreateBudgetGroupRequest{Name: "Essentials", DefaultPercent: decimal.RequireFromString("49.999")}

	suite.mockGroupRepo.On("SaveGroup", ctx, mock.MatchedBy(func(g domain.BudgetGroup) bool {
		return g.Name == "Essentials" && g.IsActive && g.DefaultPercent.Equal(decimal.RequireFromString("50.00"))
	})).Return(nil).Once()

	group, err := suite.service.CreateGroup(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(group.GroupID)
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListGroups_ReportsAdvisoryPercentTotal() {
	ctx := context.Background()
	groups := []domain.BudgetGroup{
		{GroupID: "g1", DefaultPercent: decimal.NewFromInt(50)},
		{GroupID: "g2", DefaultPercent: decimal.NewFromInt(30)},
		{GroupID: "g3", DefaultPercent: decimal.NewFromInt(25)},
	}

	suite.mockGroupRepo.On("ListGroupsByWorkspace", ctx, suite.workspaceID, true).Return(groups, nil).Once()

	got, total, valid, err := suite.service.ListGroups(ctx, suite.workspaceID, suite.userID)

	suite.Require().NoError(err)
	suite.Len(got, 3)
	// Over-allocation is surfaced but never blocks anything.
	suite.False(valid)
	suite.True(total.Equal(decimal.NewFromInt(105)))
}

func (suite *BudgetServiceTestSuite) TestCreateCategory_RejectsInactiveGroup() {
	ctx := context.Background()
	inactive := &domain.BudgetGroup{GroupID: "g1", WorkspaceID: suite.workspaceID, IsActive: false}

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.workspaceID, "g1").Return(inactive, nil).Once()

	_, err := suite.service.CreateCategory(ctx, suite.workspaceID, "g1", dto.CreateBudgetCategoryRequest{Name: "Rent"}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateCategory_ValidatesDestinationGroup() {
	ctx := context.Background()
	category := &domain.BudgetCategory{CategoryID: "c1", WorkspaceID: suite.workspaceID, GroupID: "g1", Name: "Rent", IsActive: true}
	destination := "g2"

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.workspaceID, "c1").Return(category, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.workspaceID, "g2").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCategory(ctx, suite.workspaceID, "c1", dto.UpdateBudgetCategoryRequest{GroupID: &destination}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

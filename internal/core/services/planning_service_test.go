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

type PlanningServiceTestSuite struct {
	suite.Suite
	mockPlanRepo  *MockPlanRepository
	mockGroupRepo *MockBudgetGroupRepository
	service       portssvc.PlanningService

	workspaceID string
	userID      string
}

func (suite *PlanningServiceTestSuite) SetupTest() {
	suite.mockPlanRepo = new(MockPlanRepository)
	suite.mockGroupRepo = new(MockBudgetGroupRepository)
	suite.service = services.NewPlanningService(suite.mockPlanRepo, suite.mockGroupRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PlanningServiceTestSuite) TestEnsurePlan_ReturnsExistingPlan() {
	ctx := context.Background()
	planID := uuid.NewString()
	existing := &domain.MonthlyBudgetPlan{PlanID: planID, WorkspaceID: suite.workspaceID, YearMonth: "2024-03"}
	allocations := []domain.MonthlyGroupAllocation{
		{AllocationID: uuid.NewString(), PlanID: planID, GroupID: uuid.NewString(), PercentSnapshot: decimal.NewFromInt(50)},
	}

	suite.mockPlanRepo.On("FindPlan", ctx, suite.workspaceID, "2024-03").Return(existing, nil).Once()
	suite.mockPlanRepo.On("FindAllocationsByPlanID", ctx, planID).Return(allocations, nil).Once()

	plan, got, err := suite.service.EnsurePlan(ctx, suite.workspaceID, "2024-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing, plan)
	suite.Equal(allocations, got)
	// No group listing, no create: the snapshot is immutable once taken.
	suite.mockGroupRepo.AssertNotCalled(suite.T(), "ListGroupsByWorkspace", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestEnsurePlan_CreatesSnapshotFromCurrentDefaults() {
	ctx := context.Background()
	groups := []domain.BudgetGroup{
		{GroupID: "g1", Name: "Essentials", DefaultPercent: decimal.NewFromInt(50)},
		{GroupID: "g2", Name: "Savings", DefaultPercent: decimal.NewFromInt(30)},
		{GroupID: "g3", Name: "Fun", DefaultPercent: decimal.NewFromInt(20)},
	}

	suite.mockPlanRepo.On("FindPlan", ctx, suite.workspaceID, "2024-03").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGroupRepo.On("ListGroupsByWorkspace", ctx, suite.workspaceID, true).Return(groups, nil).Once()
	suite.mockPlanRepo.On("CreatePlanWithAllocations", ctx,
		mock.MatchedBy(func(plan domain.MonthlyBudgetPlan) bool {
			return plan.WorkspaceID == suite.workspaceID && plan.YearMonth == "2024-03" && plan.PlanID != ""
		}),
		mock.MatchedBy(func(allocations []domain.MonthlyGroupAllocation) bool {
			if len(allocations) != 3 {
				return false
			}
			return allocations[0].GroupID == "g1" && allocations[0].PercentSnapshot.Equal(decimal.NewFromInt(50)) &&
				allocations[2].GroupID == "g3" && allocations[2].PercentSnapshot.Equal(decimal.NewFromInt(20))
		}),
	).Return(nil).Once()
	suite.mockPlanRepo.On("FindAllocationsByPlanID", ctx, mock.AnythingOfType("string")).
		Return([]domain.MonthlyGroupAllocation{{GroupID: "g1"}, {GroupID: "g2"}, {GroupID: "g3"}}, nil).Once()

	plan, allocations, err := suite.service.EnsurePlan(ctx, suite.workspaceID, "2024-03", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(plan)
	suite.Equal("2024-03", plan.YearMonth)
	suite.Len(allocations, 3)
	suite.mockPlanRepo.AssertExpectations(suite.T())
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestEnsurePlan_LostRaceRefetchesWinner() {
	ctx := context.Background()
	winnerID := uuid.NewString()
	winner := &domain.MonthlyBudgetPlan{PlanID: winnerID, WorkspaceID: suite.workspaceID, YearMonth: "2024-03"}
	winnerAllocations := []domain.MonthlyGroupAllocation{{AllocationID: uuid.NewString(), PlanID: winnerID, GroupID: "g1"}}

	// First lookup misses, create loses the unique-constraint race, second
	// lookup returns the winner.
	suite.mockPlanRepo.On("FindPlan", ctx, suite.workspaceID, "2024-03").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGroupRepo.On("ListGroupsByWorkspace", ctx, suite.workspaceID, true).
		Return([]domain.BudgetGroup{{GroupID: "g1", DefaultPercent: decimal.NewFromInt(100)}}, nil).Once()
	suite.mockPlanRepo.On("CreatePlanWithAllocations", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockPlanRepo.On("FindPlan", ctx, suite.workspaceID, "2024-03").Return(winner, nil).Once()
	suite.mockPlanRepo.On("FindAllocationsByPlanID", ctx, winnerID).Return(winnerAllocations, nil).Once()

	plan, allocations, err := suite.service.EnsurePlan(ctx, suite.workspaceID, "2024-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner, plan)
	suite.Equal(winnerAllocations, allocations)
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestEnsurePlan_RejectsInvalidMonthKey() {
	ctx := context.Background()

	for _, key := range []string{"2024-3", "2024/03", "March 2024", "2024-13", ""} {
		_, _, err := suite.service.EnsurePlan(ctx, suite.workspaceID, key, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, "key %q", key)
	}
	suite.mockPlanRepo.AssertNotCalled(suite.T(), "FindPlan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlanningServiceTestSuite) TestUpdateMonthlyAllocation_OverridesKeepingIdentity() {
	ctx := context.Background()
	planID := uuid.NewString()
	allocationID := uuid.NewString()
	group := &domain.BudgetGroup{GroupID: "g1", WorkspaceID: suite.workspaceID, Name: "Essentials", DefaultPercent: decimal.NewFromInt(50)}
	plan := &domain.MonthlyBudgetPlan{PlanID: planID, WorkspaceID: suite.workspaceID, YearMonth: "2024-03"}
	existing := []domain.MonthlyGroupAllocation{
		{AllocationID: allocationID, PlanID: planID, GroupID: "g1", PercentSnapshot: decimal.NewFromInt(50)},
	}

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.workspaceID, "g1").Return(group, nil).Once()
	suite.mockPlanRepo.On("FindPlan", ctx, suite.workspaceID, "2024-03").Return(plan, nil).Once()
	suite.mockPlanRepo.On("FindAllocationsByPlanID", ctx, planID).Return(existing, nil).Once()
	suite.mockPlanRepo.On("UpsertAllocation", ctx, mock.MatchedBy(func(a domain.MonthlyGroupAllocation) bool {
		return a.AllocationID == allocationID && a.PlanID == planID && a.GroupID == "g1" &&
			a.PercentSnapshot.Equal(decimal.NewFromInt(40))
	})).Return(nil).Once()

	allocation, err := suite.service.UpdateMonthlyAllocation(ctx, suite.workspaceID, "2024-03", "g1",
		dto.UpdateAllocationRequest{Percent: decimal.NewFromInt(40)}, suite.userID)

	suite.Require().NoError(err)
	suite.True(allocation.PercentSnapshot.Equal(decimal.NewFromInt(40)))
	suite.mockPlanRepo.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestUpdateMonthlyAllocation_RejectsOutOfRangePercent() {
	ctx := context.Background()

	_, err := suite.service.UpdateMonthlyAllocation(ctx, suite.workspaceID, "2024-03", "g1",
		dto.UpdateAllocationRequest{Percent: decimal.NewFromInt(101)}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateMonthlyAllocation(ctx, suite.workspaceID, "2024-03", "g1",
		dto.UpdateAllocationRequest{Percent: decimal.NewFromInt(-1)}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPlanningServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningServiceTestSuite))
}

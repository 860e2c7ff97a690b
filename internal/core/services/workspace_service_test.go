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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkspaceServiceTestSuite struct {
	suite.Suite
	mockWorkspaceRepo *MockWorkspaceRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.WorkspaceService

	workspaceID string
	userID      string
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewWorkspaceService(suite.mockWorkspaceRepo, suite.mockUserRepo)
	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *WorkspaceServiceTestSuite) membership(role domain.UserWorkspaceRole) *domain.UserWorkspace {
	return &domain.UserWorkspace{UserID: suite.userID, WorkspaceID: suite.workspaceID, Role: role}
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_MakesCreatorAdmin() {
	ctx := context.Background()
	req := dto.CreateWorkspaceRequest{Name: "Family budget"}

	suite.mockWorkspaceRepo.On("SaveWorkspace", ctx, mock.MatchedBy(func(ws domain.Workspace) bool {
		return ws.Name == "Family budget" && ws.IsActive && ws.CreatedBy == suite.userID
	})).Return(nil).Once()
	suite.mockWorkspaceRepo.On("AddUserToWorkspace", ctx, mock.MatchedBy(func(m domain.UserWorkspace) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	workspace, err := suite.service.CreateWorkspace(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(workspace.WorkspaceID)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeUserAction_RoleHierarchy() {
	ctx := context.Background()

	cases := []struct {
		held     domain.UserWorkspaceRole
		required domain.UserWorkspaceRole
		allowed  bool
	}{
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleAdmin, domain.RoleReadOnly, true},
		{domain.RoleMember, domain.RoleMember, true},
		{domain.RoleMember, domain.RoleAdmin, false},
		{domain.RoleReadOnly, domain.RoleMember, false},
		{domain.RoleReadOnly, domain.RoleReadOnly, true},
		{domain.RoleRemoved, domain.RoleReadOnly, false},
	}

	for _, tc := range cases {
		suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
			Return(suite.membership(tc.held), nil).Once()

		err := suite.service.AuthorizeUserAction(ctx, suite.workspaceID, suite.userID, tc.required)
		if tc.allowed {
			suite.NoError(err, "%s should satisfy %s", tc.held, tc.required)
		} else {
			suite.ErrorIs(err, apperrors.ErrForbidden, "%s should not satisfy %s", tc.held, tc.required)
		}
	}
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeUserAction_NonMemberForbidden() {
	ctx := context.Background()

	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.workspaceID, suite.userID, domain.RoleReadOnly)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveUserFromWorkspace_RejectsSelfRemoval() {
	ctx := context.Background()

	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
		Return(suite.membership(domain.RoleAdmin), nil).Once()

	err := suite.service.RemoveUserFromWorkspace(ctx, suite.workspaceID, suite.userID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "AddUserToWorkspace", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveUserFromWorkspace_MarksRemoved() {
	ctx := context.Background()
	targetID := uuid.NewString()
	target := &domain.UserWorkspace{UserID: targetID, WorkspaceID: suite.workspaceID, Role: domain.RoleMember}

	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
		Return(suite.membership(domain.RoleAdmin), nil).Once()
	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, targetID, suite.workspaceID).
		Return(target, nil).Once()
	suite.mockWorkspaceRepo.On("AddUserToWorkspace", ctx, mock.MatchedBy(func(m domain.UserWorkspace) bool {
		return m.UserID == targetID && m.Role == domain.RoleRemoved
	})).Return(nil).Once()

	err := suite.service.RemoveUserFromWorkspace(ctx, suite.workspaceID, targetID, suite.userID)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestDeactivateWorkspace_AdminOnly() {
	ctx := context.Background()

	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
		Return(suite.membership(domain.RoleMember), nil).Once()

	err := suite.service.DeactivateWorkspace(ctx, suite.workspaceID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpdateWorkspaceActivation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestDeactivateWorkspace_Success() {
	ctx := context.Background()

	suite.mockWorkspaceRepo.On("FindUserWorkspaceRole", ctx, suite.userID, suite.workspaceID).
		Return(suite.membership(domain.RoleAdmin), nil).Once()
	suite.mockWorkspaceRepo.On("UpdateWorkspaceActivation", ctx, suite.workspaceID, false, suite.userID).
		Return(nil).Once()

	err := suite.service.DeactivateWorkspace(ctx, suite.workspaceID, suite.userID)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}

package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// WorkspaceService manages workspaces and their memberships. The caller's
// user id comes from the request context set by the auth middleware.
type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, userID string) (*domain.Workspace, error)
	GetWorkspaceByID(ctx context.Context, workspaceID string, userID string) (*domain.Workspace, error)
	ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.Workspace, error)
	AddUserToWorkspace(ctx context.Context, workspaceID string, req dto.AddUserToWorkspaceRequest, callerID string) error
	RemoveUserFromWorkspace(ctx context.Context, workspaceID string, targetUserID string, callerID string) error
	ListWorkspaceUsers(ctx context.Context, workspaceID string, callerID string) ([]domain.UserWorkspace, error)

	// DeactivateWorkspace soft-deletes the workspace. ADMIN only.
	DeactivateWorkspace(ctx context.Context, workspaceID string, callerID string) error

	// AuthorizeUserAction verifies the user holds at least the required role
	// in the workspace. Returns apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, workspaceID string, userID string, requiredRole domain.UserWorkspaceRole) error
}

// WorkspaceAuthorizer is the narrow slice of WorkspaceService other services
// depend on for role checks.
type WorkspaceAuthorizer interface {
	AuthorizeUserAction(ctx context.Context, workspaceID string, userID string, requiredRole domain.UserWorkspaceRole) error
}

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
)

// roleRank orders workspace roles from weakest to strongest for authorization
// checks. REMOVED ranks below everything.
var roleRank = map[domain.UserWorkspaceRole]int{
	domain.RoleRemoved:  0,
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserReader
}

// NewWorkspaceService creates the workspace service.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, userRepo portsrepo.UserReader) *workspaceService {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
	}
}

// CreateWorkspace creates a new workspace and makes the creator its admin.
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, userID string) (*domain.Workspace, error) {
	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	membership := domain.UserWorkspace{
		UserID:      userID,
		WorkspaceID: workspace.WorkspaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator to workspace", slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", workspace.WorkspaceID))
	return &workspace, nil
}

func (s *workspaceService) GetWorkspaceByID(ctx context.Context, workspaceID string, userID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUserAction(ctx, workspaceID, userID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace", slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

func (s *workspaceService) ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user", slog.String("user_id", userID))
		return nil, err
	}
	if workspaces == nil {
		workspaces = []domain.Workspace{}
	}
	return workspaces, nil
}

// AddUserToWorkspace adds (or re-adds) a user with the given role. Only
// admins may manage memberships.
func (s *workspaceService) AddUserToWorkspace(ctx context.Context, workspaceID string, req dto.AddUserToWorkspaceRequest, callerID string) error {
	if err := s.AuthorizeUserAction(ctx, workspaceID, callerID, domain.RoleAdmin); err != nil {
		return err
	}

	// The target user must exist.
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		return err
	}

	membership := domain.UserWorkspace{
		UserID:      req.UserID,
		WorkspaceID: workspaceID,
		Role:        domain.UserWorkspaceRole(req.Role),
		JoinedAt:    time.Now(),
	}
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workspace",
			slog.String("workspace_id", workspaceID), slog.String("target_user_id", req.UserID))
		return err
	}

	s.LogInfo(ctx, "User added to workspace",
		slog.String("workspace_id", workspaceID), slog.String("target_user_id", req.UserID), slog.String("role", req.Role))
	return nil
}

// RemoveUserFromWorkspace marks the target membership as REMOVED. Admins
// cannot remove themselves, which guarantees every workspace keeps at least
// one admin.
func (s *workspaceService) RemoveUserFromWorkspace(ctx context.Context, workspaceID string, targetUserID string, callerID string) error {
	if err := s.AuthorizeUserAction(ctx, workspaceID, callerID, domain.RoleAdmin); err != nil {
		return err
	}
	if targetUserID == callerID {
		return apperrors.NewValidationError("cannot remove yourself from the workspace")
	}

	membership, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, targetUserID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user is not a member of the workspace")
		}
		return err
	}

	membership.Role = domain.RoleRemoved
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, *membership); err != nil {
		s.LogError(ctx, err, "Failed to remove user from workspace",
			slog.String("workspace_id", workspaceID), slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "User removed from workspace",
		slog.String("workspace_id", workspaceID), slog.String("target_user_id", targetUserID))
	return nil
}

func (s *workspaceService) ListWorkspaceUsers(ctx context.Context, workspaceID string, callerID string) ([]domain.UserWorkspace, error) {
	if err := s.AuthorizeUserAction(ctx, workspaceID, callerID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.workspaceRepo.ListWorkspaceUsers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace users", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return members, nil
}

// DeactivateWorkspace soft-deletes the workspace. Memberships and data stay
// in place so the workspace can be reactivated by support tooling.
func (s *workspaceService) DeactivateWorkspace(ctx context.Context, workspaceID string, callerID string) error {
	if err := s.AuthorizeUserAction(ctx, workspaceID, callerID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.workspaceRepo.UpdateWorkspaceActivation(ctx, workspaceID, false, callerID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate workspace", slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "Workspace deactivated", slog.String("workspace_id", workspaceID))
	return nil
}

// AuthorizeUserAction verifies the user holds at least the required role in
// the workspace. A missing or REMOVED membership is reported as forbidden
// rather than not-found to avoid leaking workspace existence.
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, workspaceID string, userID string, requiredRole domain.UserWorkspaceRole) error {
	membership, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to check workspace role",
			slog.String("workspace_id", workspaceID), slog.String("user_id", userID))
		return err
	}

	if roleRank[membership.Role] < roleRank[requiredRole] || membership.Role == domain.RoleRemoved {
		return apperrors.ErrForbidden
	}
	return nil
}

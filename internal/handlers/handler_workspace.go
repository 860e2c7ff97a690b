package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// workspaceHandler handles HTTP requests related to workspaces and their
// memberships.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceService
}

func newWorkspaceHandler(ws portssvc.WorkspaceService) *workspaceHandler {
	return &workspaceHandler{workspaceService: ws}
}

// registerWorkspaceRoutes registers workspace and membership routes.
func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceService) {
	h := newWorkspaceHandler(workspaceService)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listWorkspaces)
		workspaces.GET("/:workspace_id", h.getWorkspace)
		workspaces.DELETE("/:workspace_id", h.deactivateWorkspace)
		workspaces.GET("/:workspace_id/users", h.listWorkspaceUsers)
		workspaces.POST("/:workspace_id/users", h.addUserToWorkspace)
		workspaces.DELETE("/:workspace_id/users/:user_id", h.removeUserFromWorkspace)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a workspace and makes the caller its ADMIN
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create workspace")
		return
	}

	logger.Info("Workspace created", slog.String("workspace_id", workspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// listWorkspaces godoc
// @Summary List the caller's workspaces
// @Tags workspaces
// @Produce  json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListWorkspacesForUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace by ID
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	workspace, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// deactivateWorkspace godoc
// @Summary Deactivate a workspace
// @Description Soft-deletes the workspace; memberships and data are retained
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Success 204 "Workspace deactivated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks ADMIN role"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deactivateWorkspace(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	if err := h.workspaceService.DeactivateWorkspace(c.Request.Context(), workspaceID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate workspace")
		return
	}

	logger.Info("Workspace deactivated", slog.String("workspace_id", workspaceID))
	c.Status(http.StatusNoContent)
}

// listWorkspaceUsers godoc
// @Summary List workspace members
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.WorkspaceUserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [get]
func (h *workspaceHandler) listWorkspaceUsers(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	members, err := h.workspaceService.ListWorkspaceUsers(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list workspace users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspaceUsersResponse(members))
}

// addUserToWorkspace godoc
// @Summary Add a user to a workspace
// @Description Adds or re-adds a user with the given role. Caller must be ADMIN.
// @Tags workspaces
// @Accept  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   membership body dto.AddUserToWorkspaceRequest true "User and role"
// @Success 204 "User added"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 404 {object} map[string]string "Target user not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users [post]
func (h *workspaceHandler) addUserToWorkspace(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	var req dto.AddUserToWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserToWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.workspaceService.AddUserToWorkspace(c.Request.Context(), workspaceID, req, userID); err != nil {
		respondWithError(c, logger, err, "Failed to add user to workspace")
		return
	}

	logger.Info("User added to workspace", slog.String("workspace_id", workspaceID), slog.String("target_user_id", req.UserID))
	c.Status(http.StatusNoContent)
}

// removeUserFromWorkspace godoc
// @Summary Remove a user from a workspace
// @Description Marks the membership REMOVED. Caller must be ADMIN and cannot remove themselves.
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Param   user_id path string true "Target user ID"
// @Success 204 "User removed"
// @Failure 400 {object} map[string]string "Self-removal attempted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 404 {object} map[string]string "Membership not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/users/{user_id} [delete]
func (h *workspaceHandler) removeUserFromWorkspace(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	targetUserID := c.Param("user_id")

	if err := h.workspaceService.RemoveUserFromWorkspace(c.Request.Context(), workspaceID, targetUserID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to remove user from workspace")
		return
	}

	logger.Info("User removed from workspace", slog.String("workspace_id", workspaceID), slog.String("target_user_id", targetUserID))
	c.Status(http.StatusNoContent)
}

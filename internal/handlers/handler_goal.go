package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// goalHandler handles HTTP requests for savings goals.
type goalHandler struct {
	goalService portssvc.GoalService
}

func newGoalHandler(gs portssvc.GoalService) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers savings goal routes.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalService) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goal_id", h.getGoal)
		goals.PUT("/:goal_id", h.updateGoal)
		goals.DELETE("/:goal_id", h.deleteGoal)
		goals.POST("/:goal_id/contributions", h.addContribution)
		goals.GET("/:goal_id/contributions", h.listContributions)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Non-positive target or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create goal")
		return
	}

	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	progress, err := h.goalService.GetGoalByID(c.Request.Context(), workspaceID, goal.GoalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve created goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(progress))
}

// listGoals godoc
// @Summary List goals with their progress
// @Tags goals
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	goals, err := h.goalService.ListGoals(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

// getGoal godoc
// @Summary Get a goal with its progress
// @Tags goals
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals/{goal_id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	goalID := c.Param("goal_id")

	progress, err := h.goalService.GetGoalByID(c.Request.Context(), workspaceID, goalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(progress))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal_id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Non-positive target or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals/{goal_id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	goalID := c.Param("goal_id")

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if _, err := h.goalService.UpdateGoal(c.Request.Context(), workspaceID, goalID, req, userID); err != nil {
		respondWithError(c, logger, err, "Failed to update goal")
		return
	}

	progress, err := h.goalService.GetGoalByID(c.Request.Context(), workspaceID, goalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve updated goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(progress))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Removes the goal and all of its contributions.
// @Tags goals
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal_id path string true "Goal ID"
// @Success 204 "Goal deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals/{goal_id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	goalID := c.Param("goal_id")

	if err := h.goalService.DeleteGoal(c.Request.Context(), workspaceID, goalID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete goal")
		return
	}

	logger.Info("Goal deleted", slog.String("goal_id", goalID))
	c.Status(http.StatusNoContent)
}

// addContribution godoc
// @Summary Add a contribution to a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal_id path string true "Goal ID"
// @Param   contribution body dto.AddGoalContributionRequest true "Contribution details"
// @Success 201 {object} dto.GoalContributionResponse
// @Failure 400 {object} map[string]string "Non-positive amount or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals/{goal_id}/contributions [post]
func (h *goalHandler) addContribution(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	goalID := c.Param("goal_id")

	var req dto.AddGoalContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddContribution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	contribution, err := h.goalService.AddContribution(c.Request.Context(), workspaceID, goalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add contribution")
		return
	}

	logger.Info("Contribution added", slog.String("goal_id", goalID), slog.String("contribution_id", contribution.ContributionID))
	c.JSON(http.StatusCreated, dto.ToGoalContributionResponse(contribution))
}

// listContributions godoc
// @Summary List a goal's contributions
// @Tags goals
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.ListGoalContributionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/goals/{goal_id}/contributions [get]
func (h *goalHandler) listContributions(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	goalID := c.Param("goal_id")

	contributions, err := h.goalService.ListContributions(c.Request.Context(), workspaceID, goalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list contributions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalContributionsResponse(contributions))
}

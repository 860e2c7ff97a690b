package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// budgetHandler handles HTTP requests for budget groups and categories.
type budgetHandler struct {
	budgetService portssvc.BudgetService
}

func newBudgetHandler(bs portssvc.BudgetService) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers budget group and category routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetService) {
	h := newBudgetHandler(budgetService)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:group_id", h.getGroup)
		groups.PUT("/:group_id", h.updateGroup)
		groups.DELETE("/:group_id", h.deactivateGroup)
		groups.POST("/:group_id/categories", h.createCategory)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.PUT("/:category_id", h.updateCategory)
		categories.DELETE("/:category_id", h.deactivateCategory)
	}
}

// createGroup godoc
// @Summary Create a budget group
// @Description Creates a percentage bucket, e.g. Essentials at 50%
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   group body dto.CreateBudgetGroupRequest true "Group details"
// @Success 201 {object} dto.BudgetGroupResponse
// @Failure 400 {object} map[string]string "Percent outside [0,100] or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups [post]
func (h *budgetHandler) createGroup(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	var req dto.CreateBudgetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.budgetService.CreateGroup(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create budget group")
		return
	}

	logger.Info("Budget group created", slog.String("group_id", group.GroupID))
	c.JSON(http.StatusCreated, dto.ToBudgetGroupResponse(group))
}

// listGroups godoc
// @Summary List active budget groups
// @Description Also reports whether the default percentages sum to 100; an off total is advisory only.
// @Tags budget
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListBudgetGroupsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups [get]
func (h *budgetHandler) listGroups(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	groups, total, valid, err := h.budgetService.ListGroups(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list budget groups")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetGroupsResponse(groups, total, valid))
}

// getGroup godoc
// @Summary Get a budget group by ID
// @Tags budget
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   group_id path string true "Group ID"
// @Success 200 {object} dto.BudgetGroupResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups/{group_id} [get]
func (h *budgetHandler) getGroup(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	groupID := c.Param("group_id")

	group, err := h.budgetService.GetGroupByID(c.Request.Context(), workspaceID, groupID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve budget group")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetGroupResponse(group))
}

// updateGroup godoc
// @Summary Update a budget group
// @Description Changes name, color, sort order or default percent. Existing monthly snapshots are untouched.
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   group_id path string true "Group ID"
// @Param   group body dto.UpdateBudgetGroupRequest true "Fields to update"
// @Success 200 {object} dto.BudgetGroupResponse
// @Failure 400 {object} map[string]string "Percent outside [0,100] or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups/{group_id} [put]
func (h *budgetHandler) updateGroup(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	groupID := c.Param("group_id")

	var req dto.UpdateBudgetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.budgetService.UpdateGroup(c.Request.Context(), workspaceID, groupID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update budget group")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetGroupResponse(group))
}

// deactivateGroup godoc
// @Summary Deactivate a budget group
// @Description Soft-deletes the group; months that already snapshotted it keep their allocation.
// @Tags budget
// @Param   workspace_id path string true "Workspace ID"
// @Param   group_id path string true "Group ID"
// @Success 204 "Group deactivated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups/{group_id} [delete]
func (h *budgetHandler) deactivateGroup(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	groupID := c.Param("group_id")

	if err := h.budgetService.DeactivateGroup(c.Request.Context(), workspaceID, groupID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate budget group")
		return
	}

	logger.Info("Budget group deactivated", slog.String("group_id", groupID))
	c.Status(http.StatusNoContent)
}

// createCategory godoc
// @Summary Create a category under a group
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   group_id path string true "Group ID"
// @Param   category body dto.CreateBudgetCategoryRequest true "Category details"
// @Success 201 {object} dto.BudgetCategoryResponse
// @Failure 400 {object} map[string]string "Group inactive or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/groups/{group_id}/categories [post]
func (h *budgetHandler) createCategory(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	groupID := c.Param("group_id")

	var req dto.CreateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.budgetService.CreateCategory(c.Request.Context(), workspaceID, groupID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create category")
		return
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToBudgetCategoryResponse(category))
}

// listCategories godoc
// @Summary List active categories of the workspace
// @Tags budget
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListBudgetCategoriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/categories [get]
func (h *budgetHandler) listCategories(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	categories, err := h.budgetService.ListCategories(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetCategoriesResponse(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Description Renames the category or moves it to another active group.
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   category_id path string true "Category ID"
// @Param   category body dto.UpdateBudgetCategoryRequest true "Fields to update"
// @Success 200 {object} dto.BudgetCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Category or destination group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/categories/{category_id} [put]
func (h *budgetHandler) updateCategory(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	categoryID := c.Param("category_id")

	var req dto.UpdateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.budgetService.UpdateCategory(c.Request.Context(), workspaceID, categoryID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetCategoryResponse(category))
}

// deactivateCategory godoc
// @Summary Deactivate a category
// @Description Soft-deletes the category; existing transactions keep their reference.
// @Tags budget
// @Param   workspace_id path string true "Workspace ID"
// @Param   category_id path string true "Category ID"
// @Success 204 "Category deactivated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/categories/{category_id} [delete]
func (h *budgetHandler) deactivateCategory(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	categoryID := c.Param("category_id")

	if err := h.budgetService.DeactivateCategory(c.Request.Context(), workspaceID, categoryID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate category")
		return
	}

	logger.Info("Category deactivated", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

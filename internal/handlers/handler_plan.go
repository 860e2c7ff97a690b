package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planwise/budget_planner_app/internal/core/domain"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/planwise/budget_planner_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// planHandler handles HTTP requests for monthly budget plans.
type planHandler struct {
	planningService portssvc.PlanningService
}

func newPlanHandler(ps portssvc.PlanningService) *planHandler {
	return &planHandler{planningService: ps}
}

// registerPlanRoutes registers monthly plan routes.
func registerPlanRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningService) {
	h := newPlanHandler(planningService)

	plans := rg.Group("/plans")
	{
		plans.GET("/:year_month", h.getPlan)
		plans.PUT("/:year_month/allocations/:group_id", h.updateAllocation)
	}
}

// getPlan godoc
// @Summary Get the budget plan for a month
// @Description Returns the month's frozen percentage snapshot, creating it from the current group defaults on first access.
// @Tags plans
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   year_month path string true "Month in YYYY-MM format"
// @Success 200 {object} dto.MonthlyPlanResponse
// @Failure 400 {object} map[string]string "Malformed month key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plans/{year_month} [get]
func (h *planHandler) getPlan(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	yearMonth := c.Param("year_month")

	plan, allocations, err := h.planningService.EnsurePlan(c.Request.Context(), workspaceID, yearMonth, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve plan")
		return
	}

	valid, total := money.ValidatePercentages(allocationPercents(allocations))
	c.JSON(http.StatusOK, dto.ToMonthlyPlanResponse(plan, allocations, total, valid))
}

// updateAllocation godoc
// @Summary Override one group's percentage for a month
// @Description Changes the frozen snapshot for this month only; the group's default percent is untouched.
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   year_month path string true "Month in YYYY-MM format"
// @Param   group_id path string true "Group ID"
// @Param   allocation body dto.UpdateAllocationRequest true "New percentage"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} map[string]string "Percent outside [0,100] or malformed month key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plans/{year_month}/allocations/{group_id} [put]
func (h *planHandler) updateAllocation(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	yearMonth := c.Param("year_month")
	groupID := c.Param("group_id")

	var req dto.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAllocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	allocation, err := h.planningService.UpdateMonthlyAllocation(c.Request.Context(), workspaceID, yearMonth, groupID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update allocation")
		return
	}

	logger.Info("Allocation overridden", slog.String("group_id", groupID), slog.String("year_month", yearMonth))
	c.JSON(http.StatusOK, dto.AllocationResponse{
		AllocationID:    allocation.AllocationID,
		GroupID:         allocation.GroupID,
		GroupName:       allocation.GroupName,
		PercentSnapshot: allocation.PercentSnapshot,
	})
}

func allocationPercents(allocations []domain.MonthlyGroupAllocation) []decimal.Decimal {
	percents := make([]decimal.Decimal, len(allocations))
	for i, a := range allocations {
		percents[i] = a.PercentSnapshot
	}
	return percents
}

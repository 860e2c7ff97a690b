package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// summaryHandler handles HTTP requests for the month summary view.
type summaryHandler struct {
	summaryService portssvc.SummaryService
}

func newSummaryHandler(ss portssvc.SummaryService) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers the month summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummaryService) {
	h := newSummaryHandler(summaryService)

	rg.GET("/summary/:year_month", h.getMonthSummary)
}

// getMonthSummary godoc
// @Summary Get the budget-vs-actual summary for a month
// @Description Budgets derive from the month's frozen percentages applied to POSTED income. A month with no income has zero budgets.
// @Tags summary
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   year_month path string true "Month in YYYY-MM format"
// @Success 200 {object} dto.MonthSummaryResponse
// @Failure 400 {object} map[string]string "Malformed month key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/summary/{year_month} [get]
func (h *summaryHandler) getMonthSummary(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	yearMonth := c.Param("year_month")

	summary, err := h.summaryService.GetMonthSummary(c.Request.Context(), workspaceID, yearMonth, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute month summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthSummaryResponse(summary))
}

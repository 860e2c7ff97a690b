package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// installmentHandler handles HTTP requests for installment plans.
type installmentHandler struct {
	installmentService portssvc.InstallmentService
}

func newInstallmentHandler(is portssvc.InstallmentService) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// registerInstallmentRoutes registers installment plan routes.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentService) {
	h := newInstallmentHandler(installmentService)

	plans := rg.Group("/installment-plans")
	{
		plans.POST("", h.createInstallmentPlan)
		plans.GET("", h.listInstallmentPlans)
		plans.GET("/:plan_id", h.getInstallmentPlan)
		plans.DELETE("/:plan_id", h.deleteInstallmentPlan)
	}
}

// createInstallmentPlan godoc
// @Summary Create an installment plan
// @Description Splits a purchase into N monthly PLANNED expenses. Cent remainders land on the last installment.
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   plan body dto.CreateInstallmentPlanRequest true "Plan details"
// @Success 201 {object} dto.InstallmentPlanResponse
// @Failure 400 {object} map[string]string "Non-positive total, bad month key or inactive account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/installment-plans [post]
func (h *installmentHandler) createInstallmentPlan(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	var req dto.CreateInstallmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInstallmentPlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, txns, err := h.installmentService.CreateInstallmentPlan(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create installment plan")
		return
	}

	logger.Info("Installment plan created", slog.String("installment_plan_id", plan.InstallmentPlanID), slog.Int("installments", plan.InstallmentsCount))
	c.JSON(http.StatusCreated, dto.ToInstallmentPlanResponse(plan, txns))
}

// listInstallmentPlans godoc
// @Summary List installment plans
// @Tags installments
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListInstallmentPlansResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/installment-plans [get]
func (h *installmentHandler) listInstallmentPlans(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	plans, err := h.installmentService.ListInstallmentPlans(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list installment plans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInstallmentPlansResponse(plans))
}

// getInstallmentPlan godoc
// @Summary Get an installment plan with its schedule
// @Tags installments
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   plan_id path string true "Installment plan ID"
// @Success 200 {object} dto.InstallmentPlanResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Plan not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/installment-plans/{plan_id} [get]
func (h *installmentHandler) getInstallmentPlan(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	planID := c.Param("plan_id")

	plan, txns, err := h.installmentService.GetInstallmentPlanByID(c.Request.Context(), workspaceID, planID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve installment plan")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentPlanResponse(plan, txns))
}

// deleteInstallmentPlan godoc
// @Summary Delete an installment plan
// @Description Removes the plan and its PLANNED installments. Fails if any installment was posted.
// @Tags installments
// @Param   workspace_id path string true "Workspace ID"
// @Param   plan_id path string true "Installment plan ID"
// @Success 204 "Plan deleted"
// @Failure 400 {object} map[string]string "Plan has posted installments"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Plan not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/installment-plans/{plan_id} [delete]
func (h *installmentHandler) deleteInstallmentPlan(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	planID := c.Param("plan_id")

	if err := h.installmentService.DeleteInstallmentPlan(c.Request.Context(), workspaceID, planID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete installment plan")
		return
	}

	logger.Info("Installment plan deleted", slog.String("installment_plan_id", planID))
	c.Status(http.StatusNoContent)
}

package dto

import (
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateAllocationRequest overrides the frozen percentage of one group for
// one month. It never touches the group's default percentage.
type UpdateAllocationRequest struct {
	Percent decimal.Decimal `json:"percent" binding:"required"`
}

// AllocationResponse defines data returned for a monthly group allocation.
type AllocationResponse struct {
	AllocationID    string          `json:"allocationID"`
	GroupID         string          `json:"groupID"`
	GroupName       string          `json:"groupName"`
	PercentSnapshot decimal.Decimal `json:"percentSnapshot"`
}

// MonthlyPlanResponse defines data returned for a monthly budget plan.
type MonthlyPlanResponse struct {
	PlanID        string               `json:"planID"`
	YearMonth     string               `json:"yearMonth"`
	Allocations   []AllocationResponse `json:"allocations"`
	PercentTotal  decimal.Decimal      `json:"percentTotal"`
	PercentValid  bool                 `json:"percentValid"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToMonthlyPlanResponse converts a plan and its allocations to DTO.
func ToMonthlyPlanResponse(p *domain.MonthlyBudgetPlan, allocations []domain.MonthlyGroupAllocation, total decimal.Decimal, valid bool) MonthlyPlanResponse {
	list := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		list[i] = AllocationResponse{
			AllocationID:    a.AllocationID,
			GroupID:         a.GroupID,
			GroupName:       a.GroupName,
			PercentSnapshot: a.PercentSnapshot,
		}
	}
	return MonthlyPlanResponse{
		PlanID:        p.PlanID,
		YearMonth:     p.YearMonth,
		Allocations:   list,
		PercentTotal:  total,
		PercentValid:  valid,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

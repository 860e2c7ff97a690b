package mapping

import (
	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/models"
)

// ToModelMonthlyBudgetPlan converts a domain MonthlyBudgetPlan to a model MonthlyBudgetPlan
func ToModelMonthlyBudgetPlan(d domain.MonthlyBudgetPlan) models.MonthlyBudgetPlan {
	return models.MonthlyBudgetPlan{
		PlanID:      d.PlanID,
		WorkspaceID: d.WorkspaceID,
		YearMonth:   d.YearMonth,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonthlyBudgetPlan converts a model MonthlyBudgetPlan to a domain MonthlyBudgetPlan
func ToDomainMonthlyBudgetPlan(m models.MonthlyBudgetPlan) domain.MonthlyBudgetPlan {
	return domain.MonthlyBudgetPlan{
		PlanID:      m.PlanID,
		WorkspaceID: m.WorkspaceID,
		YearMonth:   m.YearMonth,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMonthlyGroupAllocation converts a domain MonthlyGroupAllocation to a model MonthlyGroupAllocation
func ToModelMonthlyGroupAllocation(d domain.MonthlyGroupAllocation) models.MonthlyGroupAllocation {
	return models.MonthlyGroupAllocation{
		AllocationID:    d.AllocationID,
		PlanID:          d.PlanID,
		GroupID:         d.GroupID,
		PercentSnapshot: d.PercentSnapshot,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonthlyGroupAllocation converts a model MonthlyGroupAllocation to a domain MonthlyGroupAllocation
func ToDomainMonthlyGroupAllocation(m models.MonthlyGroupAllocation) domain.MonthlyGroupAllocation {
	return domain.MonthlyGroupAllocation{
		AllocationID:    m.AllocationID,
		PlanID:          m.PlanID,
		GroupID:         m.GroupID,
		PercentSnapshot: m.PercentSnapshot,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMonthlyGroupAllocationSlice converts a slice of model allocations to domain allocations
func ToDomainMonthlyGroupAllocationSlice(ms []models.MonthlyGroupAllocation) []domain.MonthlyGroupAllocation {
	ds := make([]domain.MonthlyGroupAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthlyGroupAllocation(m)
	}
	return ds
}

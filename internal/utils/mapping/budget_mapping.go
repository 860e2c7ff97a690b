package mapping

import (
	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/models"
)

// ToModelBudgetGroup converts a domain BudgetGroup to a model BudgetGroup
func ToModelBudgetGroup(d domain.BudgetGroup) models.BudgetGroup {
	return models.BudgetGroup{
		GroupID:        d.GroupID,
		WorkspaceID:    d.WorkspaceID,
		Name:           d.Name,
		Color:          d.Color,
		DefaultPercent: d.DefaultPercent,
		SortOrder:      d.SortOrder,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetGroup converts a model BudgetGroup to a domain BudgetGroup
func ToDomainBudgetGroup(m models.BudgetGroup) domain.BudgetGroup {
	return domain.BudgetGroup{
		GroupID:        m.GroupID,
		WorkspaceID:    m.WorkspaceID,
		Name:           m.Name,
		Color:          m.Color,
		DefaultPercent: m.DefaultPercent,
		SortOrder:      m.SortOrder,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetGroupSlice converts a slice of model BudgetGroups to domain BudgetGroups
func ToDomainBudgetGroupSlice(ms []models.BudgetGroup) []domain.BudgetGroup {
	ds := make([]domain.BudgetGroup, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetGroup(m)
	}
	return ds
}

// ToModelBudgetCategory converts a domain BudgetCategory to a model BudgetCategory
func ToModelBudgetCategory(d domain.BudgetCategory) models.BudgetCategory {
	return models.BudgetCategory{
		CategoryID:  d.CategoryID,
		WorkspaceID: d.WorkspaceID,
		GroupID:     d.GroupID,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetCategory converts a model BudgetCategory to a domain BudgetCategory
func ToDomainBudgetCategory(m models.BudgetCategory) domain.BudgetCategory {
	return domain.BudgetCategory{
		CategoryID:  m.CategoryID,
		WorkspaceID: m.WorkspaceID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetCategorySlice converts a slice of model BudgetCategories to domain BudgetCategories
func ToDomainBudgetCategorySlice(ms []models.BudgetCategory) []domain.BudgetCategory {
	ds := make([]domain.BudgetCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetCategory(m)
	}
	return ds
}

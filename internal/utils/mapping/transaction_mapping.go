package mapping

import (
	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		WorkspaceID:       d.WorkspaceID,
		AccountID:         d.AccountID,
		CategoryID:        d.CategoryID,
		Amount:            d.Amount,
		Type:              string(d.Type),
		Status:            string(d.Status),
		Date:              d.Date,
		Description:       d.Description,
		InstallmentPlanID: d.InstallmentPlanID,
		InstallmentNumber: d.InstallmentNumber,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		WorkspaceID:       m.WorkspaceID,
		AccountID:         m.AccountID,
		CategoryID:        m.CategoryID,
		Amount:            m.Amount,
		Type:              domain.TransactionType(m.Type),
		Status:            domain.TransactionStatus(m.Status),
		Date:              m.Date,
		Description:       m.Description,
		InstallmentPlanID: m.InstallmentPlanID,
		InstallmentNumber: m.InstallmentNumber,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelInstallmentPlan converts a domain InstallmentPlan to a model InstallmentPlan
func ToModelInstallmentPlan(d domain.InstallmentPlan) models.InstallmentPlan {
	return models.InstallmentPlan{
		InstallmentPlanID: d.InstallmentPlanID,
		WorkspaceID:       d.WorkspaceID,
		AccountID:         d.AccountID,
		CategoryID:        d.CategoryID,
		Description:       d.Description,
		TotalAmount:       d.TotalAmount,
		InstallmentsCount: d.InstallmentsCount,
		FirstDueDate:      d.FirstDueDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallmentPlan converts a model InstallmentPlan to a domain InstallmentPlan
func ToDomainInstallmentPlan(m models.InstallmentPlan) domain.InstallmentPlan {
	return domain.InstallmentPlan{
		InstallmentPlanID: m.InstallmentPlanID,
		WorkspaceID:       m.WorkspaceID,
		AccountID:         m.AccountID,
		CategoryID:        m.CategoryID,
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		InstallmentsCount: m.InstallmentsCount,
		FirstDueDate:      m.FirstDueDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

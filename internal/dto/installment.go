package dto

import (
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstallmentPlanRequest defines data for splitting a purchase into
// monthly installments starting at the given YYYY-MM month.
type CreateInstallmentPlanRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	CategoryID  string          `json:"categoryID"`
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	Months      int             `json:"months" binding:"required,min=1"`
	FirstMonth  string          `json:"firstMonth" binding:"required,yearmonth"`
}

// InstallmentPlanResponse defines data returned for an installment plan.
type InstallmentPlanResponse struct {
	InstallmentPlanID string                `json:"installmentPlanID"`
	AccountID         string                `json:"accountID"`
	CategoryID        string                `json:"categoryID,omitempty"`
	Description       string                `json:"description"`
	TotalAmount       decimal.Decimal       `json:"totalAmount"`
	InstallmentsCount int                   `json:"installmentsCount"`
	FirstDueDate      time.Time             `json:"firstDueDate"`
	CreatedAt         time.Time             `json:"createdAt"`
	Installments      []TransactionResponse `json:"installments,omitempty"`
}

// ToInstallmentPlanResponse converts a plan and its generated transactions to DTO.
func ToInstallmentPlanResponse(p *domain.InstallmentPlan, txns []domain.Transaction) InstallmentPlanResponse {
	var list []TransactionResponse
	if len(txns) > 0 {
		list = make([]TransactionResponse, len(txns))
		for i, t := range txns {
			list[i] = ToTransactionResponse(&t)
		}
	}
	return InstallmentPlanResponse{
		InstallmentPlanID: p.InstallmentPlanID,
		AccountID:         p.AccountID,
		CategoryID:        p.CategoryID,
		Description:       p.Description,
		TotalAmount:       p.TotalAmount,
		InstallmentsCount: p.InstallmentsCount,
		FirstDueDate:      p.FirstDueDate,
		CreatedAt:         p.CreatedAt,
		Installments:      list,
	}
}

// ListInstallmentPlansResponse wraps the list of installment plans.
type ListInstallmentPlansResponse struct {
	Plans []InstallmentPlanResponse `json:"plans"`
}

// ToListInstallmentPlansResponse converts plans (without their transactions) to DTO.
func ToListInstallmentPlansResponse(plans []domain.InstallmentPlan) ListInstallmentPlansResponse {
	list := make([]InstallmentPlanResponse, len(plans))
	for i := range plans {
		list[i] = ToInstallmentPlanResponse(&plans[i], nil)
	}
	return ListInstallmentPlansResponse{Plans: list}
}

package dto

import (
	"time"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines data for creating a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate   *time.Time      `json:"targetDate"`
}

// UpdateGoalRequest defines data allowed for updating a goal.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	TargetDate   *time.Time       `json:"targetDate"`
}

// AddGoalContributionRequest defines data for contributing towards a goal.
type AddGoalContributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Note   string          `json:"note"`
}

// GoalResponse defines data returned for a goal with its derived progress.
type GoalResponse struct {
	GoalID            string          `json:"goalID"`
	Name              string          `json:"name"`
	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TargetDate        *time.Time      `json:"targetDate,omitempty"`
	ContributedAmount decimal.Decimal `json:"contributedAmount"`
	ProgressPercent   decimal.Decimal `json:"progressPercent"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.GoalProgress to DTO.
func ToGoalResponse(gp *domain.GoalProgress) GoalResponse {
	return GoalResponse{
		GoalID:            gp.GoalID,
		Name:              gp.Name,
		TargetAmount:      gp.TargetAmount,
		TargetDate:        gp.TargetDate,
		ContributedAmount: gp.ContributedAmount,
		ProgressPercent:   gp.ProgressPercent,
		CreatedAt:         gp.CreatedAt,
		LastUpdatedAt:     gp.LastUpdatedAt,
	}
}

// ListGoalsResponse wraps the list of goals with progress.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToListGoalsResponse converts a slice of domain.GoalProgress to DTO.
func ToListGoalsResponse(goals []domain.GoalProgress) ListGoalsResponse {
	list := make([]GoalResponse, len(goals))
	for i := range goals {
		list[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Goals: list}
}

// GoalContributionResponse defines data returned for a single contribution.
type GoalContributionResponse struct {
	ContributionID string          `json:"contributionID"`
	GoalID         string          `json:"goalID"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Note           string          `json:"note"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToGoalContributionResponse converts a domain.GoalContribution to DTO.
func ToGoalContributionResponse(c *domain.GoalContribution) GoalContributionResponse {
	return GoalContributionResponse{
		ContributionID: c.ContributionID,
		GoalID:         c.GoalID,
		Amount:         c.Amount,
		Date:           c.Date,
		Note:           c.Note,
		CreatedAt:      c.CreatedAt,
	}
}

// ListGoalContributionsResponse wraps the contributions of one goal.
type ListGoalContributionsResponse struct {
	Contributions []GoalContributionResponse `json:"contributions"`
}

// ToListGoalContributionsResponse converts contributions to DTO.
func ToListGoalContributionsResponse(contributions []domain.GoalContribution) ListGoalContributionsResponse {
	list := make([]GoalContributionResponse, len(contributions))
	for i, c := range contributions {
		list[i] = ToGoalContributionResponse(&c)
	}
	return ListGoalContributionsResponse{Contributions: list}
}

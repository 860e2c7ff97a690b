package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target; progress is derived from the sum of its
// contributions.
type Goal struct {
	GoalID       string          `json:"goalID"`      // Primary Key (e.g., UUID)
	WorkspaceID  string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"` // Positive value, two decimal places
	TargetDate   *time.Time      `json:"targetDate"`   // Optional deadline
	AuditFields
}

// GoalContribution is a single amount put toward a goal.
type GoalContribution struct {
	ContributionID string          `json:"contributionID"` // Primary Key (e.g., UUID)
	GoalID         string          `json:"goalID"`         // FK -> goals.goal_id
	Amount         decimal.Decimal `json:"amount"`         // Positive value, two decimal places
	Date           time.Time       `json:"date"`
	Note           string          `json:"note"`
	AuditFields
}

// GoalProgress is a goal together with its derived totals.
type GoalProgress struct {
	Goal
	ContributedAmount decimal.Decimal `json:"contributedAmount"`
	ProgressPercent   decimal.Decimal `json:"progressPercent"` // contributed / target * 100, two decimal places
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings target row.
type Goal struct {
	GoalID       string          `json:"goalID" db:"goal_id"`
	WorkspaceID  string          `json:"workspaceID" db:"workspace_id"`
	Name         string          `json:"name" db:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount" db:"target_amount"`
	TargetDate   *time.Time      `json:"targetDate" db:"target_date"`
	AuditFields
}

// GoalContribution represents a single amount put toward a goal.
type GoalContribution struct {
	ContributionID string          `json:"contributionID" db:"contribution_id"`
	GoalID         string          `json:"goalID" db:"goal_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Date           time.Time       `json:"date" db:"contribution_date"`
	Note           string          `json:"note" db:"note"`
	AuditFields
}

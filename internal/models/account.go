package models

// Account represents a money container row.
type Account struct {
	AccountID   string `json:"accountID" db:"account_id"`
	WorkspaceID string `json:"workspaceID" db:"workspace_id"`
	Name        string `json:"name" db:"name"`
	Kind        string `json:"kind" db:"kind"`
	IsActive    bool   `json:"isActive" db:"is_active"`
	AuditFields
}

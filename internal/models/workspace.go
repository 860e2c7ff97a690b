package models

import "time"

// Workspace represents a tenant boundary row.
type Workspace struct {
	WorkspaceID string `json:"workspaceID" db:"workspace_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	IsActive    bool   `json:"isActive" db:"is_active"`
	AuditFields
}

// UserWorkspace represents the membership of a User in a Workspace.
type UserWorkspace struct {
	UserID      string    `json:"userID" db:"user_id"`
	UserName    string    `json:"userName" db:"user_name"`
	WorkspaceID string    `json:"workspaceID" db:"workspace_id"`
	Role        string    `json:"role" db:"role"`
	JoinedAt    time.Time `json:"joinedAt" db:"joined_at"`
}

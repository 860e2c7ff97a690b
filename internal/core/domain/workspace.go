package domain

import "time"

// Workspace represents a tenant boundary; every budget group, transaction and
// plan belongs to exactly one workspace.
type Workspace struct {
	WorkspaceID string `json:"workspaceID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`        // User-defined name for the workspace
	Description string `json:"description"` // Optional description
	IsActive    bool   `json:"isActive"`    // Indicates whether the workspace is active or disabled
	AuditFields
}

// UserWorkspaceRole defines the possible roles a user can have within a workspace.
type UserWorkspaceRole string

const (
	RoleAdmin    UserWorkspaceRole = "ADMIN"
	RoleMember   UserWorkspaceRole = "MEMBER"
	RoleReadOnly UserWorkspaceRole = "READONLY"
	RoleRemoved  UserWorkspaceRole = "REMOVED" // For users who have been removed from the workspace
)

// UserWorkspace represents the membership of a User in a Workspace.
type UserWorkspace struct {
	UserID      string            `json:"userID"`      // FK -> users.user_id
	UserName    string            `json:"userName"`    // Name of the user
	WorkspaceID string            `json:"workspaceID"` // FK -> workspaces.workspace_id
	Role        UserWorkspaceRole `json:"role"`        // Role of the user in this specific workspace
	JoinedAt    time.Time         `json:"joinedAt"`    // Timestamp when the user joined the workspace
}

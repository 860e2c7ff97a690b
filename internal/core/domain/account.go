package domain

// AccountKind classifies an account for display purposes.
type AccountKind string

const (
	AccountCash AccountKind = "CASH"
	AccountBank AccountKind = "BANK"
	AccountCard AccountKind = "CARD"
)

// Account is a container transactions are recorded against (a wallet, a bank
// account, a credit card). It carries no balance of its own; balances are
// derived from the ledger.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (e.g., UUID)
	WorkspaceID string      `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name        string      `json:"name"`
	Kind        AccountKind `json:"kind"`
	IsActive    bool        `json:"isActive"` // Soft-delete flag; accounts referenced by transactions are never hard-deleted
	AuditFields
}

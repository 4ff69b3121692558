package roles

import (
	gameroleRepo "github.com/KirkDiggler/gametime/internal/repositories/gamerole"
)

// RoleAction selects the direction of an ApplyGameRole call
type RoleAction string

const (
	// RoleActionAdd grants the bound role
	RoleActionAdd RoleAction = "add"

	// RoleActionRemove revokes the bound role
	RoleActionRemove RoleAction = "remove"
)

// Config holds the dependencies for the roles service
type Config struct {
	// Repo persists the binding document
	Repo gameroleRepo.Repository

	// RoleManager performs the actual role mutations
	RoleManager RoleManager
}

// BindGameRoleInput holds a new game-to-role binding
type BindGameRoleInput struct {
	GuildID string

	// GameName is folded before storage
	GameName string

	RoleID string
}

// BindGameRoleOutput reports the stored binding
type BindGameRoleOutput struct {
	// FoldedGameName is the lookup key the binding was stored under
	FoldedGameName string
}

// ApplyGameRoleInput holds a role add/remove request for one user
type ApplyGameRoleInput struct {
	GuildID  string
	UserID   string
	GameName string
	Action   RoleAction
}

// ApplyGameRoleOutput reports what happened
type ApplyGameRoleOutput struct {
	// Applied is false when the game has no binding or the bound role
	// no longer exists
	Applied bool

	// RoleID is the bound role acted on, when Applied
	RoleID string
}

// AddRoleInput holds a role grant for the RoleManager
type AddRoleInput struct {
	GuildID string
	UserID  string
	RoleID  string

	// Reason is the audit-log entry
	Reason string
}

// RemoveRoleInput holds a role revocation for the RoleManager
type RemoveRoleInput struct {
	GuildID string
	UserID  string
	RoleID  string

	// Reason is the audit-log entry
	Reason string
}

// RoleExistsInput identifies a role to check
type RoleExistsInput struct {
	GuildID string
	RoleID  string
}

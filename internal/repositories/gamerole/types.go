package gamerole

import "github.com/KirkDiggler/gametime/internal/models"

// SaveInput holds the binding document to persist
type SaveInput struct {
	// Bindings maps guild ID to case-folded game name to role ID
	Bindings models.RoleBindings
}

// LoadOutput holds the loaded binding document
type LoadOutput struct {
	// Bindings maps guild ID to case-folded game name to role ID
	Bindings models.RoleBindings
}

package session

import "github.com/KirkDiggler/gametime/internal/models"

// SaveInput holds the session table to persist
type SaveInput struct {
	// Sessions maps user ID to that user's active session
	Sessions map[string]*models.PlaySession
}

// LoadOutput holds the loaded session table
type LoadOutput struct {
	// Sessions maps user ID to that user's active session
	Sessions map[string]*models.PlaySession
}

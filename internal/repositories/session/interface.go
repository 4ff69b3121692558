package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gametime/internal/repositories/session Repository

// Repository defines the interface for active-session persistence.
// The session table is a single document, loaded once at startup and
// overwritten wholesale after every mutation.
type Repository interface {
	// Load retrieves the full active-session table
	Load(ctx context.Context) (*LoadOutput, error)

	// Save overwrites the full active-session table
	Save(ctx context.Context, input *SaveInput) error
}

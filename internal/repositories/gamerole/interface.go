package gamerole

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gametime/internal/repositories/gamerole Repository

// Repository defines the interface for game-role binding persistence.
// Bindings are a single per-guild-keyed document, overwritten
// wholesale on save.
type Repository interface {
	// Load retrieves the full binding document
	Load(ctx context.Context) (*LoadOutput, error)

	// Save overwrites the full binding document
	Save(ctx context.Context, input *SaveInput) error
}

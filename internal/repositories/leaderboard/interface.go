package leaderboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gametime/internal/repositories/leaderboard Repository

// Repository defines the interface for leaderboard persistence. The
// user board and the game board are two independent documents, each a
// per-guild-keyed mapping, overwritten wholesale on save.
type Repository interface {
	// LoadUserTotals retrieves the per-guild user playtime document
	LoadUserTotals(ctx context.Context) (*LoadUserTotalsOutput, error)

	// SaveUserTotals overwrites the per-guild user playtime document
	SaveUserTotals(ctx context.Context, input *SaveUserTotalsInput) error

	// LoadGameTotals retrieves the per-guild game playtime document
	LoadGameTotals(ctx context.Context) (*LoadGameTotalsOutput, error)

	// SaveGameTotals overwrites the per-guild game playtime document
	SaveGameTotals(ctx context.Context, input *SaveGameTotalsInput) error
}

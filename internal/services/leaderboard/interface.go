package leaderboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gametime/internal/services/leaderboard Service

// Service defines the interface for leaderboard accounting
type Service interface {
	// Credit adds playtime seconds to a user's running total for a guild
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)

	// CreditGame adds playtime seconds to a game's running total for a guild
	CreditGame(ctx context.Context, input *CreditGameInput) (*CreditOutput, error)

	// TopUsers returns up to N users sorted by descending total playtime
	TopUsers(ctx context.Context, input *TopInput) (*TopOutput, error)

	// TopGames returns up to N games sorted by descending total playtime
	TopGames(ctx context.Context, input *TopInput) (*TopOutput, error)

	// ResetGuild clears both of one guild's leaderboards
	ResetGuild(ctx context.Context, input *ResetGuildInput) (*ResetGuildOutput, error)

	// Guilds returns the distinct guild IDs present on either board
	Guilds(ctx context.Context) (*GuildsOutput, error)
}

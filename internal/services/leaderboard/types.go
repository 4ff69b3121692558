package leaderboard

import (
	"github.com/KirkDiggler/gametime/internal/models"
	leaderboardRepo "github.com/KirkDiggler/gametime/internal/repositories/leaderboard"
)

// Config holds the dependencies for the leaderboard service
type Config struct {
	// Repo persists the two leaderboard documents
	Repo leaderboardRepo.Repository
}

// CreditInput holds a playtime credit for a user
type CreditInput struct {
	GuildID string
	UserID  string

	// Seconds is clamped: zero or negative credits are dropped
	Seconds int64
}

// CreditGameInput holds a playtime credit for a game
type CreditGameInput struct {
	GuildID string

	// GameName is case-preserved
	GameName string

	// Seconds is clamped: zero or negative credits are dropped
	Seconds int64
}

// CreditOutput reports whether the credit was applied
type CreditOutput struct {
	Credited bool
}

// TopInput holds a top-N leaderboard query
type TopInput struct {
	GuildID string
	Limit   int
}

// TopOutput holds the sorted leaderboard rows
type TopOutput struct {
	Entries []*models.LeaderboardEntry
}

// ResetGuildInput identifies the guild whose boards are cleared
type ResetGuildInput struct {
	GuildID string
}

// ResetGuildOutput reports what was cleared
type ResetGuildOutput struct {
	// UsersCleared is the number of user rows dropped
	UsersCleared int

	// GamesCleared is the number of game rows dropped
	GamesCleared int
}

// GuildsOutput lists the guilds with leaderboard data
type GuildsOutput struct {
	GuildIDs []string
}

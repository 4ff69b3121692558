package models

// LeaderboardEntry is one row of a per-guild leaderboard, keyed either
// by user ID or by game name depending on the board.
type LeaderboardEntry struct {
	// Key is the user ID for the user board, the case-preserved game
	// name for the game board
	Key string

	// TotalSeconds is the accumulated playtime
	TotalSeconds int64
}

// UserTotals maps guild ID to user ID to accumulated seconds.
type UserTotals map[string]map[string]int64

// GameTotals maps guild ID to case-preserved game name to accumulated
// seconds.
type GameTotals map[string]map[string]int64

// RoleBindings maps guild ID to case-folded game name to the role ID
// granted while that game is being played.
type RoleBindings map[string]map[string]string

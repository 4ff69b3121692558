package leaderboard

// LeaderboardError is a custom error type for leaderboard-related errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilRepository LeaderboardError = "leaderboard repository cannot be nil"
	ErrNilInput      LeaderboardError = "input cannot be nil"
	ErrEmptyGuildID  LeaderboardError = "guild ID cannot be empty"
)

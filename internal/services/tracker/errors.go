package tracker

// TrackerError is a custom error type for tracking-related errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        TrackerError = "config cannot be nil"
	ErrNilSessionRepo   TrackerError = "session repository cannot be nil"
	ErrNilLeaderboard   TrackerError = "leaderboard service cannot be nil"
	ErrNilRoles         TrackerError = "roles service cannot be nil"
	ErrNilNotifier      TrackerError = "notifier cannot be nil"
	ErrNilClock         TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator TrackerError = "UUID generator cannot be nil"
	ErrNilInput         TrackerError = "input cannot be nil"
	ErrEmptyUserID      TrackerError = "user ID cannot be empty"
	ErrEmptyGuildID     TrackerError = "guild ID cannot be empty"
	ErrEmptyGameName    TrackerError = "game name cannot be empty"
)

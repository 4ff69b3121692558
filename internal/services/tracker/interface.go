package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gametime/internal/services/tracker Service,Notifier

// Service defines the interface for play-session tracking
type Service interface {
	// StartSession begins tracking a user's game. Starting while a
	// session already exists is an idempotent no-op.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StopSession ends a user's session, crediting unsettled time to
	// the leaderboards. Stopping without a session is a no-op.
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// SwitchSession atomically stops the current session and starts a
	// fresh one under a new game
	SwitchSession(ctx context.Context, input *SwitchSessionInput) (*SwitchSessionOutput, error)

	// ActiveSession returns a user's current session, if any
	ActiveSession(ctx context.Context, input *ActiveSessionInput) (*ActiveSessionOutput, error)

	// ActivePlayers lists who is currently playing a game in a guild
	ActivePlayers(ctx context.Context, input *ActivePlayersInput) (*ActivePlayersOutput, error)

	// SweepMilestones announces playtime thresholds crossed by active
	// sessions; run periodically
	SweepMilestones(ctx context.Context) (*SweepMilestonesOutput, error)

	// FlushSessions settles in-progress playtime into the leaderboards
	// without ending sessions; run periodically
	FlushSessions(ctx context.Context) (*FlushSessionsOutput, error)

	// RunWeeklyReset publishes per-guild summaries and zeroes the
	// leaderboards when the reset weekday has arrived; run daily
	RunWeeklyReset(ctx context.Context) (*RunWeeklyResetOutput, error)
}

// Notifier is the outbound port for user-facing announcements,
// implemented by the Discord layer. Errors are returned so the caller
// can log them; they never fail the state transition that produced
// the announcement.
type Notifier interface {
	// SessionStarted announces that a user started playing
	SessionStarted(ctx context.Context, input *SessionStartedInput) error

	// SessionStopped announces that a user stopped playing
	SessionStopped(ctx context.Context, input *SessionStoppedInput) error

	// SessionSwitched announces that a user changed games
	SessionSwitched(ctx context.Context, input *SessionSwitchedInput) error

	// MilestoneReached announces a playtime threshold
	MilestoneReached(ctx context.Context, input *MilestoneReachedInput) error

	// PublishWeeklySummary posts a guild's weekly leaderboard summary
	PublishWeeklySummary(ctx context.Context, input *PublishWeeklySummaryInput) error
}

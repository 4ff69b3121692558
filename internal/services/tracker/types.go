package tracker

import (
	"time"

	"github.com/KirkDiggler/gametime/internal/common/clock"
	"github.com/KirkDiggler/gametime/internal/common/uuid"
	"github.com/KirkDiggler/gametime/internal/models"
	sessionRepo "github.com/KirkDiggler/gametime/internal/repositories/session"
	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
)

// Milestone pairs a playtime threshold with its announcement text
type Milestone struct {
	Minutes int
	Message string
}

// DefaultMilestones are announced in ascending order as a session
// crosses each threshold
var DefaultMilestones = []Milestone{
	{Minutes: 60, Message: "⏱️ Wow, such dedication! You've been gaming for 1 hour!"},
	{Minutes: 120, Message: "🎮 What a gamer! You've reached 2 hours!"},
	{Minutes: 180, Message: "🔥 Batak ampota! 3 hours of solid play!"},
	{Minutes: 240, Message: "😳 Are you okay? That’s 4 hours!"},
	{Minutes: 300, Message: "👀 This is turning into a marathon. 5 hours and counting!"},
}

// Config holds the dependencies for the tracker service
type Config struct {
	// SessionRepo persists the active-session table
	SessionRepo sessionRepo.Repository

	// Leaderboard receives settled playtime credits
	Leaderboard leaderboardSvc.Service

	// Roles grants and revokes game-bound roles
	Roles rolesSvc.Service

	// Notifier emits user-facing announcements
	Notifier Notifier

	// Clock supplies the current time
	Clock clock.Clock

	// UUIDGenerator supplies session identifiers
	UUIDGenerator uuid.UUID

	// Milestones to announce; DefaultMilestones when empty
	Milestones []Milestone

	// ResetWeekday is the day the weekly job publishes and zeroes the
	// leaderboards
	ResetWeekday time.Weekday
}

// StartSessionInput holds the context captured at session start
type StartSessionInput struct {
	UserID  string
	GuildID string

	// ChannelID is the announcement channel, may be empty
	ChannelID string

	// GameName is case-preserved
	GameName string

	// Silent suppresses the start announcement; used when seeding
	// sessions from a presence snapshot at startup
	Silent bool
}

// StartSessionOutput reports the active session
type StartSessionOutput struct {
	Session *models.PlaySession

	// AlreadyPlaying is true when a duplicate start was ignored
	AlreadyPlaying bool
}

// StopSessionInput identifies the user whose session ends
type StopSessionInput struct {
	UserID string
}

// StopSessionOutput reports the removed session
type StopSessionOutput struct {
	// Stopped is false when the user had no session to settle
	Stopped bool

	// Session is the removed session, when Stopped
	Session *models.PlaySession

	// TotalPlayed is the full session duration, for announcements
	TotalPlayed time.Duration
}

// SwitchSessionInput holds a game change for one user
type SwitchSessionInput struct {
	UserID  string
	GuildID string

	// ChannelID is the announcement channel for the new session
	ChannelID string

	// NewGameName is case-preserved
	NewGameName string
}

// SwitchSessionOutput reports the old game and the fresh session
type SwitchSessionOutput struct {
	// PreviousGame is the game the user switched away from
	PreviousGame string

	// PreviousPlayed is the full duration of the ended session
	PreviousPlayed time.Duration

	// Session is the fresh session for the new game
	Session *models.PlaySession

	// Switched is false when the user had no prior session and the
	// switch degenerated into a plain start
	Switched bool
}

// ActiveSessionInput identifies the user to look up
type ActiveSessionInput struct {
	UserID string
}

// ActiveSessionOutput reports the user's session, if any
type ActiveSessionOutput struct {
	// Playing is false when the user has no session
	Playing bool

	// Session is the active session, when Playing
	Session *models.PlaySession
}

// ActivePlayersInput holds a who-plays query
type ActivePlayersInput struct {
	GuildID string

	// GameName is case-folded for matching
	GameName string
}

// ActivePlayer is one row of a who-plays response
type ActivePlayer struct {
	UserID   string
	GameName string
	Elapsed  time.Duration
}

// ActivePlayersOutput lists the matching players, longest elapsed
// first
type ActivePlayersOutput struct {
	Players []*ActivePlayer
}

// SweepMilestonesOutput reports one milestone sweep
type SweepMilestonesOutput struct {
	// Announced counts thresholds successfully sent this sweep
	Announced int
}

// FlushSessionsOutput reports one settle sweep
type FlushSessionsOutput struct {
	// Flushed counts sessions whose watermark advanced
	Flushed int

	// CreditedSeconds is the total playtime settled this sweep
	CreditedSeconds int64
}

// RunWeeklyResetOutput reports one weekly job run
type RunWeeklyResetOutput struct {
	// Ran is false when today is not the reset weekday
	Ran bool

	// GuildsProcessed counts guilds whose boards were reset
	GuildsProcessed int

	// GuildsSkipped counts guilds whose reset failed and was left for
	// the next run
	GuildsSkipped int
}

// SessionStartedInput announces a new session
type SessionStartedInput struct {
	ChannelID string
	GuildID   string
	UserID    string
	GameName  string
}

// SessionStoppedInput announces an ended session
type SessionStoppedInput struct {
	ChannelID string
	GuildID   string
	UserID    string
	GameName  string
	Played    time.Duration
}

// SessionSwitchedInput announces a game change
type SessionSwitchedInput struct {
	ChannelID string
	GuildID   string
	UserID    string
	FromGame  string
	ToGame    string
}

// MilestoneReachedInput announces a crossed playtime threshold
type MilestoneReachedInput struct {
	ChannelID string
	GuildID   string
	UserID    string
	GameName  string
	Minutes   int
	Message   string
}

// PublishWeeklySummaryInput holds one guild's weekly summary
type PublishWeeklySummaryInput struct {
	GuildID string

	// TopUser is nil when the guild has no user playtime this week
	TopUser *models.LeaderboardEntry

	// RunnersUp are the honorable mentions, up to two
	RunnersUp []*models.LeaderboardEntry

	// TopGame is nil when the guild has no game playtime this week
	TopGame *models.LeaderboardEntry
}

package models

import (
	"sort"
	"strings"
	"time"
)

// PlaySession represents one user's currently-ongoing tracked game
// activity. At most one exists per user at any time.
type PlaySession struct {
	// ID is a unique identifier for this session, used for logging
	ID string `json:"id"`

	// UserID is the Discord user ID of the player
	UserID string `json:"user_id"`

	// GuildID is the Discord server/guild the session belongs to
	GuildID string `json:"guild_id"`

	// ChannelID is the announcement channel captured at session start.
	// May be empty if no channel could be resolved.
	ChannelID string `json:"channel_id"`

	// GameName is the game being played, case-preserved for display
	GameName string `json:"game_name"`

	// StartTime is when the session began
	StartTime time.Time `json:"start_time"`

	// LastSettledTime is the instant up to which elapsed time has
	// already been credited to the leaderboards
	LastSettledTime time.Time `json:"last_settled_time"`

	// MilestonesHit holds the minute thresholds already announced for
	// this session. Grows monotonically, never shrinks.
	MilestonesHit []int `json:"milestones_hit"`
}

// HasMilestone reports whether the given minute threshold has already
// been announced for this session.
func (s *PlaySession) HasMilestone(minutes int) bool {
	for _, m := range s.MilestonesHit {
		if m == minutes {
			return true
		}
	}
	return false
}

// MarkMilestone records a minute threshold as announced, keeping the
// slice sorted.
func (s *PlaySession) MarkMilestone(minutes int) {
	if s.HasMilestone(minutes) {
		return
	}
	s.MilestonesHit = append(s.MilestonesHit, minutes)
	sort.Ints(s.MilestonesHit)
}

// MinutesPlayed returns the whole minutes elapsed since the session
// started.
func (s *PlaySession) MinutesPlayed(now time.Time) int {
	return int(now.Sub(s.StartTime) / time.Minute)
}

// FoldGameName normalizes a game name for lookups. Display paths keep
// the case-preserved name.
func FoldGameName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

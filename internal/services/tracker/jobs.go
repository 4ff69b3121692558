package tracker

import (
	"context"

	"github.com/rs/zerolog/log"

	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
)

// milestoneCandidate snapshots a threshold crossing so the announce
// can happen outside the session lock
type milestoneCandidate struct {
	userID    string
	sessionID string
	channelID string
	guildID   string
	gameName  string
	minutes   int
	message   string
}

func (s *service) SweepMilestones(ctx context.Context) (*SweepMilestonesOutput, error) {
	now := s.clock.Now()

	var candidates []milestoneCandidate

	s.mu.Lock()
	for userID, sess := range s.sessions {
		played := sess.MinutesPlayed(now)
		for _, m := range s.milestones {
			if played < m.Minutes || sess.HasMilestone(m.Minutes) {
				continue
			}

			candidates = append(candidates, milestoneCandidate{
				userID:    userID,
				sessionID: sess.ID,
				channelID: sess.ChannelID,
				guildID:   sess.GuildID,
				gameName:  sess.GameName,
				minutes:   m.Minutes,
				message:   m.Message,
			})
		}
	}
	s.mu.Unlock()

	announced := 0
	marked := false

	for _, c := range candidates {
		if err := s.notifier.MilestoneReached(ctx, &MilestoneReachedInput{
			ChannelID: c.channelID,
			GuildID:   c.guildID,
			UserID:    c.userID,
			GameName:  c.gameName,
			Minutes:   c.minutes,
			Message:   c.message,
		}); err != nil {
			// Not marked as hit; the next sweep retries it
			log.Warn().Err(err).
				Str("user_id", c.userID).
				Int("minutes", c.minutes).
				Msg("failed to announce milestone")
			continue
		}

		announced++

		// The session may have ended or been replaced while the
		// announce was in flight; only mark the one we swept
		s.mu.Lock()
		if sess, ok := s.sessions[c.userID]; ok && sess.ID == c.sessionID {
			sess.MarkMilestone(c.minutes)
			marked = true
		}
		s.mu.Unlock()
	}

	if marked {
		s.mu.Lock()
		err := s.persistLocked(ctx)
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	return &SweepMilestonesOutput{Announced: announced}, nil
}

func (s *service) FlushSessions(ctx context.Context) (*FlushSessionsOutput, error) {
	now := s.clock.Now()

	type pendingCredit struct {
		guildID  string
		userID   string
		gameName string
		seconds  int64
	}

	var credits []pendingCredit

	s.mu.Lock()
	for _, sess := range s.sessions {
		seconds := int64(now.Sub(sess.LastSettledTime).Seconds())

		credits = append(credits, pendingCredit{
			guildID:  sess.GuildID,
			userID:   sess.UserID,
			gameName: sess.GameName,
			seconds:  seconds,
		})

		// The watermark advances even when the interval rounds to
		// zero, so the elapsed time is never settled twice
		sess.LastSettledTime = now
	}

	if len(credits) == 0 {
		s.mu.Unlock()
		return &FlushSessionsOutput{}, nil
	}

	if err := s.persistLocked(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	var total int64
	for _, c := range credits {
		total += c.seconds

		if _, err := s.leaderboard.Credit(ctx, &leaderboardSvc.CreditInput{
			GuildID: c.guildID,
			UserID:  c.userID,
			Seconds: c.seconds,
		}); err != nil {
			log.Error().Err(err).
				Str("user_id", c.userID).
				Msg("failed to flush user playtime")
		}

		if _, err := s.leaderboard.CreditGame(ctx, &leaderboardSvc.CreditGameInput{
			GuildID:  c.guildID,
			GameName: c.gameName,
			Seconds:  c.seconds,
		}); err != nil {
			log.Error().Err(err).
				Str("game_name", c.gameName).
				Msg("failed to flush game playtime")
		}
	}

	return &FlushSessionsOutput{
		Flushed:         len(credits),
		CreditedSeconds: total,
	}, nil
}

func (s *service) RunWeeklyReset(ctx context.Context) (*RunWeeklyResetOutput, error) {
	now := s.clock.Now()

	if now.Weekday() != s.resetWeekday {
		return &RunWeeklyResetOutput{Ran: false}, nil
	}

	guilds, err := s.leaderboard.Guilds(ctx)
	if err != nil {
		return nil, err
	}

	output := &RunWeeklyResetOutput{Ran: true}

	for _, guildID := range guilds.GuildIDs {
		if err := s.resetGuild(ctx, guildID); err != nil {
			log.Error().Err(err).
				Str("guild_id", guildID).
				Msg("weekly reset failed for guild")
			output.GuildsSkipped++
			continue
		}
		output.GuildsProcessed++
	}

	return output, nil
}

// resetGuild publishes one guild's summary and zeroes its boards. A
// failed publish is logged but does not block the reset; carrying the
// week's totals forward would double them into the next week.
func (s *service) resetGuild(ctx context.Context, guildID string) error {
	summary := &PublishWeeklySummaryInput{GuildID: guildID}

	topUsers, err := s.leaderboard.TopUsers(ctx, &leaderboardSvc.TopInput{
		GuildID: guildID,
		Limit:   3,
	})
	if err != nil {
		return err
	}

	if len(topUsers.Entries) > 0 {
		summary.TopUser = topUsers.Entries[0]
		summary.RunnersUp = topUsers.Entries[1:]
	}

	topGames, err := s.leaderboard.TopGames(ctx, &leaderboardSvc.TopInput{
		GuildID: guildID,
		Limit:   1,
	})
	if err != nil {
		return err
	}

	if len(topGames.Entries) > 0 {
		summary.TopGame = topGames.Entries[0]
	}

	if summary.TopUser != nil || summary.TopGame != nil {
		if err := s.notifier.PublishWeeklySummary(ctx, summary); err != nil {
			log.Warn().Err(err).
				Str("guild_id", guildID).
				Msg("failed to publish weekly summary")
		}
	}

	_, err = s.leaderboard.ResetGuild(ctx, &leaderboardSvc.ResetGuildInput{
		GuildID: guildID,
	})
	return err
}

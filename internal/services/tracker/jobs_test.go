package tracker_test

import (
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gametime/internal/models"
	sessionRepo "github.com/KirkDiggler/gametime/internal/repositories/session"
	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

func (s *TrackerServiceTestSuite) TestSweepMilestones_AnnouncesAfterSend() {
	start := s.testTime.Add(-65 * time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockNotifier.EXPECT().
		MilestoneReached(gomock.Any(), &tracker.MilestoneReachedInput{
			ChannelID: "channel-1",
			GuildID:   "guild-1",
			UserID:    "user-1",
			GameName:  "Hades",
			Minutes:   60,
			Message:   tracker.DefaultMilestones[0].Message,
		}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), &sessionRepo.SaveInput{
			Sessions: map[string]*models.PlaySession{
				"user-1": {
					ID:              "session-user-1",
					UserID:          "user-1",
					GuildID:         "guild-1",
					ChannelID:       "channel-1",
					GameName:        "Hades",
					StartTime:       start,
					LastSettledTime: start,
					MilestonesHit:   []int{60},
				},
			},
		}).
		Return(nil)

	output, err := svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Announced)

	// The threshold is recorded; a second sweep stays quiet
	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err = svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, output.Announced)
}

func (s *TrackerServiceTestSuite) TestSweepMilestones_SendFailureRetriesNextSweep() {
	start := s.testTime.Add(-65 * time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockNotifier.EXPECT().
		MilestoneReached(gomock.Any(), gomock.Any()).
		Return(errors.New("discord unavailable"))

	// The failed send is not recorded, so nothing is persisted
	output, err := svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, output.Announced)

	// Next sweep retries and succeeds
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockNotifier.EXPECT().
		MilestoneReached(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err = svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Announced)
}

func (s *TrackerServiceTestSuite) TestSweepMilestones_MultipleThresholds() {
	start := s.testTime.Add(-125 * time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	for _, minutes := range []int{60, 120} {
		minutes := minutes
		s.mockNotifier.EXPECT().
			MilestoneReached(gomock.Any(), gomock.Cond(func(x any) bool {
				input := x.(*tracker.MilestoneReachedInput)
				return input.Minutes == minutes
			})).
			Return(nil)
	}

	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Cond(func(x any) bool {
			input := x.(*sessionRepo.SaveInput)
			sess := input.Sessions["user-1"]
			return sess != nil && sess.HasMilestone(60) && sess.HasMilestone(120)
		})).
		Return(nil)

	output, err := svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, output.Announced)
}

func (s *TrackerServiceTestSuite) TestSweepMilestones_NothingCrossed() {
	start := s.testTime.Add(-30 * time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := svc.SweepMilestones(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, output.Announced)
}

func (s *TrackerServiceTestSuite) TestFlushSessions_AdvancesWatermark() {
	start := s.testTime.Add(-300 * time.Second)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	// First flush settles the full 300 seconds
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Cond(func(x any) bool {
			input := x.(*sessionRepo.SaveInput)
			return input.Sessions["user-1"].LastSettledTime.Equal(s.testTime)
		})).
		Return(nil)
	s.mockLeaderboard.EXPECT().
		Credit(gomock.Any(), &leaderboardSvc.CreditInput{
			GuildID: "guild-1",
			UserID:  "user-1",
			Seconds: 300,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)
	s.mockLeaderboard.EXPECT().
		CreditGame(gomock.Any(), &leaderboardSvc.CreditGameInput{
			GuildID:  "guild-1",
			GameName: "Hades",
			Seconds:  300,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)

	output, err := svc.FlushSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Flushed)
	s.Equal(int64(300), output.CreditedSeconds)

	// A minute later only the new interval is settled
	later := s.testTime.Add(time.Minute)
	s.mockClock.EXPECT().Now().Return(later)
	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockLeaderboard.EXPECT().
		Credit(gomock.Any(), &leaderboardSvc.CreditInput{
			GuildID: "guild-1",
			UserID:  "user-1",
			Seconds: 60,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)
	s.mockLeaderboard.EXPECT().
		CreditGame(gomock.Any(), &leaderboardSvc.CreditGameInput{
			GuildID:  "guild-1",
			GameName: "Hades",
			Seconds:  60,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)

	output, err = svc.FlushSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(60), output.CreditedSeconds)
}

func (s *TrackerServiceTestSuite) TestFlushSessions_NoSessions() {
	svc := s.newService(nil)

	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := svc.FlushSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, output.Flushed)
	s.Equal(int64(0), output.CreditedSeconds)
}

func (s *TrackerServiceTestSuite) TestFlushSessions_SaveError() {
	start := s.testTime.Add(-time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, start),
	})

	expectedError := errors.New("disk full")

	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(expectedError)

	// No credits are applied when the watermark cannot be persisted
	output, err := svc.FlushSessions(s.ctx)
	s.Require().Error(err)
	s.Equal(expectedError, err)
	s.Nil(output)
}

func (s *TrackerServiceTestSuite) TestRunWeeklyReset_WrongWeekday() {
	svc := s.newService(nil)

	// A Monday
	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := svc.RunWeeklyReset(s.ctx)
	s.Require().NoError(err)
	s.False(output.Ran)
}

func (s *TrackerServiceTestSuite) TestRunWeeklyReset_HappyPath() {
	svc := s.newService(nil)

	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(sunday)

	s.mockLeaderboard.EXPECT().
		Guilds(gomock.Any()).
		Return(&leaderboardSvc.GuildsOutput{GuildIDs: []string{"guild-1"}}, nil)

	s.mockLeaderboard.EXPECT().
		TopUsers(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-1", Limit: 3}).
		Return(&leaderboardSvc.TopOutput{Entries: []*models.LeaderboardEntry{
			{Key: "user-a", TotalSeconds: 7200},
			{Key: "user-b", TotalSeconds: 3600},
		}}, nil)

	s.mockLeaderboard.EXPECT().
		TopGames(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-1", Limit: 1}).
		Return(&leaderboardSvc.TopOutput{Entries: []*models.LeaderboardEntry{
			{Key: "Hades", TotalSeconds: 9000},
		}}, nil)

	s.mockNotifier.EXPECT().
		PublishWeeklySummary(gomock.Any(), &tracker.PublishWeeklySummaryInput{
			GuildID: "guild-1",
			TopUser: &models.LeaderboardEntry{Key: "user-a", TotalSeconds: 7200},
			RunnersUp: []*models.LeaderboardEntry{
				{Key: "user-b", TotalSeconds: 3600},
			},
			TopGame: &models.LeaderboardEntry{Key: "Hades", TotalSeconds: 9000},
		}).
		Return(nil)

	s.mockLeaderboard.EXPECT().
		ResetGuild(gomock.Any(), &leaderboardSvc.ResetGuildInput{GuildID: "guild-1"}).
		Return(&leaderboardSvc.ResetGuildOutput{UsersCleared: 2, GamesCleared: 1}, nil)

	output, err := svc.RunWeeklyReset(s.ctx)
	s.Require().NoError(err)
	s.True(output.Ran)
	s.Equal(1, output.GuildsProcessed)
	s.Equal(0, output.GuildsSkipped)
}

func (s *TrackerServiceTestSuite) TestRunWeeklyReset_PublishFailureStillResets() {
	svc := s.newService(nil)

	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(sunday)

	s.mockLeaderboard.EXPECT().
		Guilds(gomock.Any()).
		Return(&leaderboardSvc.GuildsOutput{GuildIDs: []string{"guild-1"}}, nil)
	s.mockLeaderboard.EXPECT().
		TopUsers(gomock.Any(), gomock.Any()).
		Return(&leaderboardSvc.TopOutput{Entries: []*models.LeaderboardEntry{
			{Key: "user-a", TotalSeconds: 7200},
		}}, nil)
	s.mockLeaderboard.EXPECT().
		TopGames(gomock.Any(), gomock.Any()).
		Return(&leaderboardSvc.TopOutput{}, nil)

	s.mockNotifier.EXPECT().
		PublishWeeklySummary(gomock.Any(), gomock.Any()).
		Return(errors.New("channel missing"))

	// Carrying the totals forward would double them into next week
	s.mockLeaderboard.EXPECT().
		ResetGuild(gomock.Any(), &leaderboardSvc.ResetGuildInput{GuildID: "guild-1"}).
		Return(&leaderboardSvc.ResetGuildOutput{}, nil)

	output, err := svc.RunWeeklyReset(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.GuildsProcessed)
}

func (s *TrackerServiceTestSuite) TestRunWeeklyReset_GuildsAreIndependent() {
	svc := s.newService(nil)

	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(sunday)

	s.mockLeaderboard.EXPECT().
		Guilds(gomock.Any()).
		Return(&leaderboardSvc.GuildsOutput{GuildIDs: []string{"guild-1", "guild-2"}}, nil)

	// guild-1 fails at the reset step
	s.mockLeaderboard.EXPECT().
		TopUsers(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-1", Limit: 3}).
		Return(&leaderboardSvc.TopOutput{Entries: []*models.LeaderboardEntry{
			{Key: "user-a", TotalSeconds: 100},
		}}, nil)
	s.mockLeaderboard.EXPECT().
		TopGames(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-1", Limit: 1}).
		Return(&leaderboardSvc.TopOutput{}, nil)
	s.mockNotifier.EXPECT().
		PublishWeeklySummary(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockLeaderboard.EXPECT().
		ResetGuild(gomock.Any(), &leaderboardSvc.ResetGuildInput{GuildID: "guild-1"}).
		Return(nil, errors.New("save failed"))

	// guild-2 still gets processed
	s.mockLeaderboard.EXPECT().
		TopUsers(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-2", Limit: 3}).
		Return(&leaderboardSvc.TopOutput{Entries: []*models.LeaderboardEntry{
			{Key: "user-z", TotalSeconds: 200},
		}}, nil)
	s.mockLeaderboard.EXPECT().
		TopGames(gomock.Any(), &leaderboardSvc.TopInput{GuildID: "guild-2", Limit: 1}).
		Return(&leaderboardSvc.TopOutput{}, nil)
	s.mockNotifier.EXPECT().
		PublishWeeklySummary(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockLeaderboard.EXPECT().
		ResetGuild(gomock.Any(), &leaderboardSvc.ResetGuildInput{GuildID: "guild-2"}).
		Return(&leaderboardSvc.ResetGuildOutput{}, nil)

	output, err := svc.RunWeeklyReset(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.GuildsProcessed)
	s.Equal(1, output.GuildsSkipped)
}

func (s *TrackerServiceTestSuite) TestRunWeeklyReset_EmptyGuildSkipsSummary() {
	svc := s.newService(nil)

	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(sunday)

	s.mockLeaderboard.EXPECT().
		Guilds(gomock.Any()).
		Return(&leaderboardSvc.GuildsOutput{GuildIDs: []string{"guild-1"}}, nil)
	s.mockLeaderboard.EXPECT().
		TopUsers(gomock.Any(), gomock.Any()).
		Return(&leaderboardSvc.TopOutput{}, nil)
	s.mockLeaderboard.EXPECT().
		TopGames(gomock.Any(), gomock.Any()).
		Return(&leaderboardSvc.TopOutput{}, nil)

	// No summary is published for an empty board
	s.mockLeaderboard.EXPECT().
		ResetGuild(gomock.Any(), gomock.Any()).
		Return(&leaderboardSvc.ResetGuildOutput{}, nil)

	output, err := svc.RunWeeklyReset(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.GuildsProcessed)
}

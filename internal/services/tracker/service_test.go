package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/gametime/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/gametime/internal/common/uuid/mocks"
	"github.com/KirkDiggler/gametime/internal/models"
	sessionRepo "github.com/KirkDiggler/gametime/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/gametime/internal/repositories/session/mocks"
	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	lbMocks "github.com/KirkDiggler/gametime/internal/services/leaderboard/mocks"
	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
	rolesMocks "github.com/KirkDiggler/gametime/internal/services/roles/mocks"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/gametime/internal/services/tracker/mocks"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockLeaderboard *lbMocks.MockService
	mockRoles       *rolesMocks.MockService
	mockNotifier    *trackerMocks.MockNotifier
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	ctx             context.Context

	testTime time.Time
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockLeaderboard = lbMocks.NewMockService(s.mockCtrl)
	s.mockRoles = rolesMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = trackerMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) newService(sessions map[string]*models.PlaySession) tracker.Service {
	if sessions == nil {
		sessions = map[string]*models.PlaySession{}
	}

	s.mockSessionRepo.EXPECT().
		Load(gomock.Any()).
		Return(&sessionRepo.LoadOutput{Sessions: sessions}, nil)

	svc, err := tracker.New(&tracker.Config{
		SessionRepo:   s.mockSessionRepo,
		Leaderboard:   s.mockLeaderboard,
		Roles:         s.mockRoles,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		ResetWeekday:  time.Sunday,
	})
	s.Require().NoError(err)
	return svc
}

func (s *TrackerServiceTestSuite) session(userID, gameName string, start, settled time.Time) *models.PlaySession {
	return &models.PlaySession{
		ID:              "session-" + userID,
		UserID:          userID,
		GuildID:         "guild-1",
		ChannelID:       "channel-1",
		GameName:        gameName,
		StartTime:       start,
		LastSettledTime: settled,
		MilestonesHit:   []int{},
	}
}

func (s *TrackerServiceTestSuite) TestNew_NilConfig() {
	svc, err := tracker.New(nil)
	s.Require().Error(err)
	s.Equal(tracker.ErrNilConfig, err)
	s.Nil(svc)
}

func (s *TrackerServiceTestSuite) TestNew_MissingDependency() {
	svc, err := tracker.New(&tracker.Config{
		SessionRepo: s.mockSessionRepo,
	})
	s.Require().Error(err)
	s.Equal(tracker.ErrNilLeaderboard, err)
	s.Nil(svc)
}

func (s *TrackerServiceTestSuite) TestStartSession_HappyPath() {
	svc := s.newService(nil)

	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("session-1")

	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), &sessionRepo.SaveInput{
			Sessions: map[string]*models.PlaySession{
				"user-1": {
					ID:              "session-1",
					UserID:          "user-1",
					GuildID:         "guild-1",
					ChannelID:       "channel-1",
					GameName:        "Hades",
					StartTime:       s.testTime,
					LastSettledTime: s.testTime,
					MilestonesHit:   []int{},
				},
			},
		}).
		Return(nil)

	s.mockRoles.EXPECT().
		ApplyGameRole(gomock.Any(), &rolesSvc.ApplyGameRoleInput{
			GuildID:  "guild-1",
			UserID:   "user-1",
			GameName: "Hades",
			Action:   rolesSvc.RoleActionAdd,
		}).
		Return(&rolesSvc.ApplyGameRoleOutput{Applied: true, RoleID: "role-1"}, nil)

	s.mockNotifier.EXPECT().
		SessionStarted(gomock.Any(), &tracker.SessionStartedInput{
			ChannelID: "channel-1",
			GuildID:   "guild-1",
			UserID:    "user-1",
			GameName:  "Hades",
		}).
		Return(nil)

	output, err := svc.StartSession(s.ctx, &tracker.StartSessionInput{
		UserID:    "user-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameName:  "Hades",
	})

	s.Require().NoError(err)
	s.False(output.AlreadyPlaying)
	s.Equal("session-1", output.Session.ID)
	s.Equal(s.testTime, output.Session.StartTime)
}

func (s *TrackerServiceTestSuite) TestStartSession_AlreadyPlaying() {
	existing := s.session("user-1", "Hades", s.testTime.Add(-time.Hour), s.testTime.Add(-time.Hour))
	svc := s.newService(map[string]*models.PlaySession{"user-1": existing})

	// No save, no role change, no announcement
	output, err := svc.StartSession(s.ctx, &tracker.StartSessionInput{
		UserID:    "user-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameName:  "Hades",
	})

	s.Require().NoError(err)
	s.True(output.AlreadyPlaying)
	s.Equal(existing.ID, output.Session.ID)
}

func (s *TrackerServiceTestSuite) TestStartSession_SaveError() {
	svc := s.newService(nil)

	expectedError := errors.New("disk full")

	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("session-1")
	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(expectedError)

	output, err := svc.StartSession(s.ctx, &tracker.StartSessionInput{
		UserID:    "user-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameName:  "Hades",
	})

	s.Require().Error(err)
	s.Equal(expectedError, err)
	s.Nil(output)
}

func (s *TrackerServiceTestSuite) TestStartSession_ValidationErrors() {
	svc := s.newService(nil)

	_, err := svc.StartSession(s.ctx, nil)
	s.Equal(tracker.ErrNilInput, err)

	_, err = svc.StartSession(s.ctx, &tracker.StartSessionInput{
		GuildID:  "guild-1",
		GameName: "Hades",
	})
	s.Equal(tracker.ErrEmptyUserID, err)

	_, err = svc.StartSession(s.ctx, &tracker.StartSessionInput{
		UserID:  "user-1",
		GuildID: "guild-1",
	})
	s.Equal(tracker.ErrEmptyGameName, err)
}

func (s *TrackerServiceTestSuite) TestStopSession_HappyPath() {
	// 5 minutes of play, the last minute not yet settled
	start := s.testTime.Add(-5 * time.Minute)
	settled := s.testTime.Add(-time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, settled),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), &sessionRepo.SaveInput{
			Sessions: map[string]*models.PlaySession{},
		}).
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

	s.mockRoles.EXPECT().
		ApplyGameRole(gomock.Any(), &rolesSvc.ApplyGameRoleInput{
			GuildID:  "guild-1",
			UserID:   "user-1",
			GameName: "Hades",
			Action:   rolesSvc.RoleActionRemove,
		}).
		Return(&rolesSvc.ApplyGameRoleOutput{Applied: true, RoleID: "role-1"}, nil)

	s.mockNotifier.EXPECT().
		SessionStopped(gomock.Any(), &tracker.SessionStoppedInput{
			ChannelID: "channel-1",
			GuildID:   "guild-1",
			UserID:    "user-1",
			GameName:  "Hades",
			Played:    5 * time.Minute,
		}).
		Return(nil)

	output, err := svc.StopSession(s.ctx, &tracker.StopSessionInput{UserID: "user-1"})

	s.Require().NoError(err)
	s.True(output.Stopped)
	s.Equal(5*time.Minute, output.TotalPlayed)
}

func (s *TrackerServiceTestSuite) TestStopSession_NoSession() {
	svc := s.newService(nil)

	output, err := svc.StopSession(s.ctx, &tracker.StopSessionInput{UserID: "user-1"})

	s.Require().NoError(err)
	s.False(output.Stopped)
}

func (s *TrackerServiceTestSuite) TestSwitchSession_HappyPath() {
	start := s.testTime.Add(-10 * time.Minute)
	settled := s.testTime.Add(-2 * time.Minute)
	svc := s.newService(map[string]*models.PlaySession{
		"user-1": s.session("user-1", "Hades", start, settled),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2)
	s.mockUUID.EXPECT().NewUUID().Return("session-2")

	s.mockSessionRepo.EXPECT().
		Save(gomock.Any(), &sessionRepo.SaveInput{
			Sessions: map[string]*models.PlaySession{
				"user-1": {
					ID:              "session-2",
					UserID:          "user-1",
					GuildID:         "guild-1",
					ChannelID:       "channel-1",
					GameName:        "Stardew Valley",
					StartTime:       s.testTime,
					LastSettledTime: s.testTime,
					MilestonesHit:   []int{},
				},
			},
		}).
		Return(nil)

	// Only the unsettled two minutes are credited to the old game
	s.mockLeaderboard.EXPECT().
		Credit(gomock.Any(), &leaderboardSvc.CreditInput{
			GuildID: "guild-1",
			UserID:  "user-1",
			Seconds: 120,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)

	s.mockLeaderboard.EXPECT().
		CreditGame(gomock.Any(), &leaderboardSvc.CreditGameInput{
			GuildID:  "guild-1",
			GameName: "Hades",
			Seconds:  120,
		}).
		Return(&leaderboardSvc.CreditOutput{Credited: true}, nil)

	s.mockRoles.EXPECT().
		ApplyGameRole(gomock.Any(), &rolesSvc.ApplyGameRoleInput{
			GuildID:  "guild-1",
			UserID:   "user-1",
			GameName: "Hades",
			Action:   rolesSvc.RoleActionRemove,
		}).
		Return(&rolesSvc.ApplyGameRoleOutput{}, nil)

	s.mockRoles.EXPECT().
		ApplyGameRole(gomock.Any(), &rolesSvc.ApplyGameRoleInput{
			GuildID:  "guild-1",
			UserID:   "user-1",
			GameName: "Stardew Valley",
			Action:   rolesSvc.RoleActionAdd,
		}).
		Return(&rolesSvc.ApplyGameRoleOutput{}, nil)

	s.mockNotifier.EXPECT().
		SessionSwitched(gomock.Any(), &tracker.SessionSwitchedInput{
			ChannelID: "channel-1",
			GuildID:   "guild-1",
			UserID:    "user-1",
			FromGame:  "Hades",
			ToGame:    "Stardew Valley",
		}).
		Return(nil)

	output, err := svc.SwitchSession(s.ctx, &tracker.SwitchSessionInput{
		UserID:      "user-1",
		GuildID:     "guild-1",
		ChannelID:   "channel-1",
		NewGameName: "Stardew Valley",
	})

	s.Require().NoError(err)
	s.True(output.Switched)
	s.Equal("Hades", output.PreviousGame)
	s.Equal(10*time.Minute, output.PreviousPlayed)
	s.Equal("session-2", output.Session.ID)
	s.Equal([]int{}, output.Session.MilestonesHit)
}

func (s *TrackerServiceTestSuite) TestSwitchSession_NoExistingSession() {
	svc := s.newService(nil)

	s.mockClock.EXPECT().Now().Return(s.testTime).Times(2)
	s.mockUUID.EXPECT().NewUUID().Return("session-1")
	s.mockSessionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	s.mockRoles.EXPECT().
		ApplyGameRole(gomock.Any(), gomock.Any()).
		Return(&rolesSvc.ApplyGameRoleOutput{}, nil)
	s.mockNotifier.EXPECT().
		SessionStarted(gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := svc.SwitchSession(s.ctx, &tracker.SwitchSessionInput{
		UserID:      "user-1",
		GuildID:     "guild-1",
		ChannelID:   "channel-1",
		NewGameName: "Hades",
	})

	s.Require().NoError(err)
	s.False(output.Switched)
	s.Equal("session-1", output.Session.ID)
}

func (s *TrackerServiceTestSuite) TestActiveSession() {
	existing := s.session("user-1", "Hades", s.testTime.Add(-time.Hour), s.testTime.Add(-time.Hour))
	svc := s.newService(map[string]*models.PlaySession{"user-1": existing})

	output, err := svc.ActiveSession(s.ctx, &tracker.ActiveSessionInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.True(output.Playing)
	s.Equal("Hades", output.Session.GameName)

	output, err = svc.ActiveSession(s.ctx, &tracker.ActiveSessionInput{UserID: "user-2"})
	s.Require().NoError(err)
	s.False(output.Playing)
}

func (s *TrackerServiceTestSuite) TestActivePlayers_FiltersAndSorts() {
	svc := s.newService(map[string]*models.PlaySession{
		"user-a": s.session("user-a", "Hades", s.testTime.Add(-time.Hour), s.testTime),
		"user-b": s.session("user-b", "HADES", s.testTime.Add(-2*time.Hour), s.testTime),
		"user-c": s.session("user-c", "Stardew Valley", s.testTime.Add(-3*time.Hour), s.testTime),
	})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := svc.ActivePlayers(s.ctx, &tracker.ActivePlayersInput{
		GuildID:  "guild-1",
		GameName: "hades",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Players, 2)
	s.Equal("user-b", output.Players[0].UserID)
	s.Equal(2*time.Hour, output.Players[0].Elapsed)
	s.Equal("user-a", output.Players[1].UserID)
}

func (s *TrackerServiceTestSuite) TestActivePlayers_OtherGuildExcluded() {
	other := s.session("user-x", "Hades", s.testTime.Add(-time.Hour), s.testTime)
	other.GuildID = "guild-2"
	svc := s.newService(map[string]*models.PlaySession{"user-x": other})

	s.mockClock.EXPECT().Now().Return(s.testTime)

	output, err := svc.ActivePlayers(s.ctx, &tracker.ActivePlayersInput{
		GuildID:  "guild-1",
		GameName: "hades",
	})

	s.Require().NoError(err)
	s.Empty(output.Players)
}

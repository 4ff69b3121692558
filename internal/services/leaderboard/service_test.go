package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gametime/internal/models"
	leaderboardRepo "github.com/KirkDiggler/gametime/internal/repositories/leaderboard"
	repoMocks "github.com/KirkDiggler/gametime/internal/repositories/leaderboard/mocks"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *repoMocks.MockRepository
	ctx      context.Context
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

// newService builds a service whose constructor load returns the given
// documents
func (s *LeaderboardServiceTestSuite) newService(users models.UserTotals, games models.GameTotals) Service {
	if users == nil {
		users = models.UserTotals{}
	}
	if games == nil {
		games = models.GameTotals{}
	}

	s.mockRepo.EXPECT().
		LoadUserTotals(gomock.Any()).
		Return(&leaderboardRepo.LoadUserTotalsOutput{Totals: users}, nil)

	s.mockRepo.EXPECT().
		LoadGameTotals(gomock.Any()).
		Return(&leaderboardRepo.LoadGameTotalsOutput{Totals: games}, nil)

	svc, err := New(&Config{Repo: s.mockRepo})
	s.Require().NoError(err)
	return svc
}

func (s *LeaderboardServiceTestSuite) TestNew_NilConfig() {
	svc, err := New(nil)
	s.Require().Error(err)
	s.Equal(ErrNilConfig, err)
	s.Nil(svc)
}

func (s *LeaderboardServiceTestSuite) TestCredit_HappyPath() {
	svc := s.newService(nil, nil)

	s.mockRepo.EXPECT().
		SaveUserTotals(gomock.Any(), &leaderboardRepo.SaveUserTotalsInput{
			Totals: models.UserTotals{"guild-1": {"user-a": 300}},
		}).
		Return(nil)

	output, err := svc.Credit(s.ctx, &CreditInput{
		GuildID: "guild-1",
		UserID:  "user-a",
		Seconds: 300,
	})

	s.Require().NoError(err)
	s.True(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestCredit_Accumulates() {
	svc := s.newService(models.UserTotals{"guild-1": {"user-a": 100}}, nil)

	s.mockRepo.EXPECT().
		SaveUserTotals(gomock.Any(), &leaderboardRepo.SaveUserTotalsInput{
			Totals: models.UserTotals{"guild-1": {"user-a": 400}},
		}).
		Return(nil)

	output, err := svc.Credit(s.ctx, &CreditInput{
		GuildID: "guild-1",
		UserID:  "user-a",
		Seconds: 300,
	})

	s.Require().NoError(err)
	s.True(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestCredit_ZeroSecondsDropped() {
	svc := s.newService(nil, nil)

	// No save expected
	output, err := svc.Credit(s.ctx, &CreditInput{
		GuildID: "guild-1",
		UserID:  "user-a",
		Seconds: 0,
	})

	s.Require().NoError(err)
	s.False(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestCredit_NegativeSecondsDropped() {
	svc := s.newService(nil, nil)

	output, err := svc.Credit(s.ctx, &CreditInput{
		GuildID: "guild-1",
		UserID:  "user-a",
		Seconds: -30,
	})

	s.Require().NoError(err)
	s.False(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestCreditGame_HappyPath() {
	svc := s.newService(nil, nil)

	s.mockRepo.EXPECT().
		SaveGameTotals(gomock.Any(), &leaderboardRepo.SaveGameTotalsInput{
			Totals: models.GameTotals{"guild-1": {"Factorio": 600}},
		}).
		Return(nil)

	output, err := svc.CreditGame(s.ctx, &CreditGameInput{
		GuildID:  "guild-1",
		GameName: "Factorio",
		Seconds:  600,
	})

	s.Require().NoError(err)
	s.True(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestCreditGame_NegativeSecondsDropped() {
	svc := s.newService(nil, nil)

	output, err := svc.CreditGame(s.ctx, &CreditGameInput{
		GuildID:  "guild-1",
		GameName: "Factorio",
		Seconds:  -1,
	})

	s.Require().NoError(err)
	s.False(output.Credited)
}

func (s *LeaderboardServiceTestSuite) TestTopUsers_Ordering() {
	svc := s.newService(models.UserTotals{
		"guild-1": {
			"user-c": 1800,
			"user-a": 7200,
			"user-b": 3600,
		},
	}, nil)

	output, err := svc.TopUsers(s.ctx, &TopInput{GuildID: "guild-1", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)
	s.Equal("user-a", output.Entries[0].Key)
	s.Equal("user-b", output.Entries[1].Key)
	s.Equal("user-c", output.Entries[2].Key)
	s.Equal(int64(7200), output.Entries[0].TotalSeconds)
}

func (s *LeaderboardServiceTestSuite) TestTopUsers_LimitApplied() {
	svc := s.newService(models.UserTotals{
		"guild-1": {
			"user-c": 1800,
			"user-a": 7200,
			"user-b": 3600,
		},
	}, nil)

	output, err := svc.TopUsers(s.ctx, &TopInput{GuildID: "guild-1", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal("user-a", output.Entries[0].Key)
	s.Equal("user-b", output.Entries[1].Key)
}

func (s *LeaderboardServiceTestSuite) TestTopUsers_UnknownGuild() {
	svc := s.newService(nil, nil)

	output, err := svc.TopUsers(s.ctx, &TopInput{GuildID: "guild-x", Limit: 10})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *LeaderboardServiceTestSuite) TestTopGames_Ordering() {
	svc := s.newService(nil, models.GameTotals{
		"guild-1": {
			"Hades":    900,
			"Factorio": 5400,
		},
	})

	output, err := svc.TopGames(s.ctx, &TopInput{GuildID: "guild-1", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal("Factorio", output.Entries[0].Key)
	s.Equal("Hades", output.Entries[1].Key)
}

func (s *LeaderboardServiceTestSuite) TestResetGuild_ClearsOnlyThatGuild() {
	svc := s.newService(
		models.UserTotals{
			"guild-1": {"user-a": 7200},
			"guild-2": {"user-z": 60},
		},
		models.GameTotals{
			"guild-1": {"Factorio": 7200},
			"guild-2": {"Hades": 60},
		},
	)

	s.mockRepo.EXPECT().
		SaveUserTotals(gomock.Any(), &leaderboardRepo.SaveUserTotalsInput{
			Totals: models.UserTotals{
				"guild-1": {},
				"guild-2": {"user-z": 60},
			},
		}).
		Return(nil)

	s.mockRepo.EXPECT().
		SaveGameTotals(gomock.Any(), &leaderboardRepo.SaveGameTotalsInput{
			Totals: models.GameTotals{
				"guild-1": {},
				"guild-2": {"Hades": 60},
			},
		}).
		Return(nil)

	output, err := svc.ResetGuild(s.ctx, &ResetGuildInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(1, output.UsersCleared)
	s.Equal(1, output.GamesCleared)

	// Other guild's data is intact
	other, err := svc.TopUsers(s.ctx, &TopInput{GuildID: "guild-2", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(other.Entries, 1)
	s.Equal("user-z", other.Entries[0].Key)
}

func (s *LeaderboardServiceTestSuite) TestGuilds_Union() {
	svc := s.newService(
		models.UserTotals{"guild-1": {"user-a": 10}},
		models.GameTotals{"guild-2": {"Hades": 10}},
	)

	output, err := svc.Guilds(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"guild-1", "guild-2"}, output.GuildIDs)
}

package tracker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/common/clock"
	"github.com/KirkDiggler/gametime/internal/common/uuid"
	"github.com/KirkDiggler/gametime/internal/models"
	sessionRepo "github.com/KirkDiggler/gametime/internal/repositories/session"
	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
)

type service struct {
	sessionRepo   sessionRepo.Repository
	leaderboard   leaderboardSvc.Service
	roles         rolesSvc.Service
	notifier      Notifier
	clock         clock.Clock
	uuidGenerator uuid.UUID
	milestones    []Milestone
	resetWeekday  time.Weekday

	// mu guards sessions; every mutation persists before releasing it
	mu       sync.Mutex
	sessions map[string]*models.PlaySession
}

// New creates a new tracker service, loading the active-session table
// from the repository so sessions survive restarts.
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}

	if cfg.Roles == nil {
		return nil, ErrNilRoles
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	milestones := cfg.Milestones
	if len(milestones) == 0 {
		milestones = DefaultMilestones
	}

	loaded, err := cfg.SessionRepo.Load(context.Background())
	if err != nil {
		return nil, err
	}

	sessions := loaded.Sessions
	if sessions == nil {
		sessions = make(map[string]*models.PlaySession)
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		leaderboard:   cfg.Leaderboard,
		roles:         cfg.Roles,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		milestones:    milestones,
		resetWeekday:  cfg.ResetWeekday,
		sessions:      sessions,
	}, nil
}

func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.GameName == "" {
		return nil, ErrEmptyGameName
	}

	s.mu.Lock()

	if existing, ok := s.sessions[input.UserID]; ok {
		s.mu.Unlock()
		return &StartSessionOutput{
			Session:        existing,
			AlreadyPlaying: true,
		}, nil
	}

	sess := s.newSessionLocked(input.UserID, input.GuildID, input.ChannelID, input.GameName)

	if err := s.persistLocked(ctx); err != nil {
		delete(s.sessions, input.UserID)
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.applyRole(ctx, input.GuildID, input.UserID, input.GameName, rolesSvc.RoleActionAdd)

	if !input.Silent {
		if err := s.notifier.SessionStarted(ctx, &SessionStartedInput{
			ChannelID: input.ChannelID,
			GuildID:   input.GuildID,
			UserID:    input.UserID,
			GameName:  input.GameName,
		}); err != nil {
			log.Warn().Err(err).
				Str("user_id", input.UserID).
				Msg("failed to announce session start")
		}
	}

	return &StartSessionOutput{Session: sess}, nil
}

func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	now := s.clock.Now()

	s.mu.Lock()

	sess, ok := s.sessions[input.UserID]
	if !ok {
		s.mu.Unlock()
		return &StopSessionOutput{Stopped: false}, nil
	}

	unsettled := now.Sub(sess.LastSettledTime)
	total := now.Sub(sess.StartTime)

	delete(s.sessions, input.UserID)

	if err := s.persistLocked(ctx); err != nil {
		s.sessions[input.UserID] = sess
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.credit(ctx, sess, unsettled)
	s.applyRole(ctx, sess.GuildID, sess.UserID, sess.GameName, rolesSvc.RoleActionRemove)

	if err := s.notifier.SessionStopped(ctx, &SessionStoppedInput{
		ChannelID: sess.ChannelID,
		GuildID:   sess.GuildID,
		UserID:    sess.UserID,
		GameName:  sess.GameName,
		Played:    total,
	}); err != nil {
		log.Warn().Err(err).
			Str("user_id", sess.UserID).
			Msg("failed to announce session stop")
	}

	return &StopSessionOutput{
		Stopped:     true,
		Session:     sess,
		TotalPlayed: total,
	}, nil
}

func (s *service) SwitchSession(ctx context.Context, input *SwitchSessionInput) (*SwitchSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.NewGameName == "" {
		return nil, ErrEmptyGameName
	}

	now := s.clock.Now()

	s.mu.Lock()

	old, ok := s.sessions[input.UserID]
	if !ok {
		s.mu.Unlock()

		// Nothing to switch away from; treat it as a plain start
		started, err := s.StartSession(ctx, &StartSessionInput{
			UserID:    input.UserID,
			GuildID:   input.GuildID,
			ChannelID: input.ChannelID,
			GameName:  input.NewGameName,
		})
		if err != nil {
			return nil, err
		}

		return &SwitchSessionOutput{
			Session:  started.Session,
			Switched: false,
		}, nil
	}

	unsettled := now.Sub(old.LastSettledTime)
	total := now.Sub(old.StartTime)

	sess := s.newSessionLocked(input.UserID, input.GuildID, input.ChannelID, input.NewGameName)

	if err := s.persistLocked(ctx); err != nil {
		s.sessions[input.UserID] = old
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.credit(ctx, old, unsettled)
	s.applyRole(ctx, old.GuildID, old.UserID, old.GameName, rolesSvc.RoleActionRemove)
	s.applyRole(ctx, input.GuildID, input.UserID, input.NewGameName, rolesSvc.RoleActionAdd)

	if err := s.notifier.SessionSwitched(ctx, &SessionSwitchedInput{
		ChannelID: input.ChannelID,
		GuildID:   input.GuildID,
		UserID:    input.UserID,
		FromGame:  old.GameName,
		ToGame:    input.NewGameName,
	}); err != nil {
		log.Warn().Err(err).
			Str("user_id", input.UserID).
			Msg("failed to announce session switch")
	}

	return &SwitchSessionOutput{
		PreviousGame:   old.GameName,
		PreviousPlayed: total,
		Session:        sess,
		Switched:       true,
	}, nil
}

func (s *service) ActiveSession(_ context.Context, input *ActiveSessionInput) (*ActiveSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[input.UserID]
	if !ok {
		return &ActiveSessionOutput{Playing: false}, nil
	}

	copied := *sess
	return &ActiveSessionOutput{
		Playing: true,
		Session: &copied,
	}, nil
}

func (s *service) ActivePlayers(_ context.Context, input *ActivePlayersInput) (*ActivePlayersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	now := s.clock.Now()
	folded := models.FoldGameName(input.GameName)

	s.mu.Lock()
	players := make([]*ActivePlayer, 0)
	for _, sess := range s.sessions {
		if sess.GuildID != input.GuildID {
			continue
		}

		if folded != "" && models.FoldGameName(sess.GameName) != folded {
			continue
		}

		players = append(players, &ActivePlayer{
			UserID:   sess.UserID,
			GameName: sess.GameName,
			Elapsed:  now.Sub(sess.StartTime),
		})
	}
	s.mu.Unlock()

	sort.Slice(players, func(i, j int) bool {
		if players[i].Elapsed != players[j].Elapsed {
			return players[i].Elapsed > players[j].Elapsed
		}
		return players[i].UserID < players[j].UserID
	})

	return &ActivePlayersOutput{Players: players}, nil
}

// newSessionLocked creates and registers a fresh session. Callers must
// hold mu.
func (s *service) newSessionLocked(userID, guildID, channelID, gameName string) *models.PlaySession {
	now := s.clock.Now()

	sess := &models.PlaySession{
		ID:              s.uuidGenerator.NewUUID(),
		UserID:          userID,
		GuildID:         guildID,
		ChannelID:       channelID,
		GameName:        gameName,
		StartTime:       now,
		LastSettledTime: now,
		MilestonesHit:   []int{},
	}

	s.sessions[userID] = sess
	return sess
}

// persistLocked overwrites the session document. Callers must hold mu.
func (s *service) persistLocked(ctx context.Context) error {
	return s.sessionRepo.Save(ctx, &sessionRepo.SaveInput{
		Sessions: s.sessions,
	})
}

// credit settles a duration into both leaderboards. Credit failures
// are logged, not returned: the session transition already happened.
func (s *service) credit(ctx context.Context, sess *models.PlaySession, played time.Duration) {
	seconds := int64(played.Seconds())

	if _, err := s.leaderboard.Credit(ctx, &leaderboardSvc.CreditInput{
		GuildID: sess.GuildID,
		UserID:  sess.UserID,
		Seconds: seconds,
	}); err != nil {
		log.Error().Err(err).
			Str("user_id", sess.UserID).
			Str("guild_id", sess.GuildID).
			Msg("failed to credit user playtime")
	}

	if _, err := s.leaderboard.CreditGame(ctx, &leaderboardSvc.CreditGameInput{
		GuildID:  sess.GuildID,
		GameName: sess.GameName,
		Seconds:  seconds,
	}); err != nil {
		log.Error().Err(err).
			Str("game_name", sess.GameName).
			Str("guild_id", sess.GuildID).
			Msg("failed to credit game playtime")
	}
}

// applyRole grants or revokes the game-bound role. Role failures are
// logged, not returned.
func (s *service) applyRole(ctx context.Context, guildID, userID, gameName string, action rolesSvc.RoleAction) {
	if _, err := s.roles.ApplyGameRole(ctx, &rolesSvc.ApplyGameRoleInput{
		GuildID:  guildID,
		UserID:   userID,
		GameName: gameName,
		Action:   action,
	}); err != nil {
		log.Warn().Err(err).
			Str("user_id", userID).
			Str("game_name", gameName).
			Str("action", string(action)).
			Msg("failed to apply game role")
	}
}

package leaderboard

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/gametime/internal/models"
	leaderboardRepo "github.com/KirkDiggler/gametime/internal/repositories/leaderboard"
)

// service implements the Service interface. The in-memory totals are
// authoritative at runtime; the repository holds write-through
// snapshots read once at construction.
type service struct {
	repo leaderboardRepo.Repository

	mu    sync.Mutex
	users models.UserTotals
	games models.GameTotals
}

// New creates a new leaderboard service, loading both documents from
// the repository
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	ctx := context.Background()

	users, err := cfg.Repo.LoadUserTotals(ctx)
	if err != nil {
		return nil, err
	}

	games, err := cfg.Repo.LoadGameTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &service{
		repo:  cfg.Repo,
		users: users.Totals,
		games: games.Totals,
	}, nil
}

// Credit adds playtime seconds to a user's running total for a guild.
// Zero or negative credits are dropped without persisting.
func (s *service) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.Seconds <= 0 {
		return &CreditOutput{Credited: false}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users[input.GuildID] == nil {
		s.users[input.GuildID] = map[string]int64{}
	}
	s.users[input.GuildID][input.UserID] += input.Seconds

	if err := s.repo.SaveUserTotals(ctx, &leaderboardRepo.SaveUserTotalsInput{
		Totals: s.users,
	}); err != nil {
		return nil, err
	}

	return &CreditOutput{Credited: true}, nil
}

// CreditGame adds playtime seconds to a game's running total for a
// guild. Zero or negative credits are dropped without persisting.
func (s *service) CreditGame(ctx context.Context, input *CreditGameInput) (*CreditOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.Seconds <= 0 {
		return &CreditOutput{Credited: false}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.games[input.GuildID] == nil {
		s.games[input.GuildID] = map[string]int64{}
	}
	s.games[input.GuildID][input.GameName] += input.Seconds

	if err := s.repo.SaveGameTotals(ctx, &leaderboardRepo.SaveGameTotalsInput{
		Totals: s.games,
	}); err != nil {
		return nil, err
	}

	return &CreditOutput{Credited: true}, nil
}

// TopUsers returns up to Limit users sorted by descending total
// playtime. Does not mutate state.
func (s *service) TopUsers(_ context.Context, input *TopInput) (*TopOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &TopOutput{Entries: topEntries(s.users[input.GuildID], input.Limit)}, nil
}

// TopGames returns up to Limit games sorted by descending total
// playtime. Does not mutate state.
func (s *service) TopGames(_ context.Context, input *TopInput) (*TopOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &TopOutput{Entries: topEntries(s.games[input.GuildID], input.Limit)}, nil
}

// ResetGuild clears both of one guild's leaderboards and persists
// both documents. Other guilds are untouched.
func (s *service) ResetGuild(ctx context.Context, input *ResetGuildInput) (*ResetGuildOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &ResetGuildOutput{
		UsersCleared: len(s.users[input.GuildID]),
		GamesCleared: len(s.games[input.GuildID]),
	}

	s.users[input.GuildID] = map[string]int64{}
	s.games[input.GuildID] = map[string]int64{}

	if err := s.repo.SaveUserTotals(ctx, &leaderboardRepo.SaveUserTotalsInput{
		Totals: s.users,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.SaveGameTotals(ctx, &leaderboardRepo.SaveGameTotalsInput{
		Totals: s.games,
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// Guilds returns the distinct guild IDs present on either board,
// sorted for deterministic iteration by the weekly job
func (s *service) Guilds(_ context.Context) (*GuildsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]struct{}{}
	for guildID := range s.users {
		seen[guildID] = struct{}{}
	}
	for guildID := range s.games {
		seen[guildID] = struct{}{}
	}

	guildIDs := make([]string, 0, len(seen))
	for guildID := range seen {
		guildIDs = append(guildIDs, guildID)
	}
	sort.Strings(guildIDs)

	return &GuildsOutput{GuildIDs: guildIDs}, nil
}

// topEntries sorts one guild's totals descending by seconds, breaking
// ties by key so repeated queries return a stable order
func topEntries(totals map[string]int64, limit int) []*models.LeaderboardEntry {
	entries := make([]*models.LeaderboardEntry, 0, len(totals))
	for key, seconds := range totals {
		entries = append(entries, &models.LeaderboardEntry{
			Key:          key,
			TotalSeconds: seconds,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalSeconds != entries[j].TotalSeconds {
			return entries[i].TotalSeconds > entries[j].TotalSeconds
		}
		return entries[i].Key < entries[j].Key
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

package roles

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/gametime/internal/models"
	gameroleRepo "github.com/KirkDiggler/gametime/internal/repositories/gamerole"
)

// service implements the Service interface. Bindings are held in
// memory and written through to the repository on every bind.
type service struct {
	repo        gameroleRepo.Repository
	roleManager RoleManager

	mu       sync.Mutex
	bindings models.RoleBindings
}

// New creates a new roles service, loading the binding document from
// the repository
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	if cfg.RoleManager == nil {
		return nil, ErrNilRoleManager
	}

	loaded, err := cfg.Repo.Load(context.Background())
	if err != nil {
		return nil, err
	}

	return &service{
		repo:        cfg.Repo,
		roleManager: cfg.RoleManager,
		bindings:    loaded.Bindings,
	}, nil
}

// BindGameRole creates or overwrites the binding from a game name to
// a role in one guild and persists the binding document
func (s *service) BindGameRole(ctx context.Context, input *BindGameRoleInput) (*BindGameRoleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID == "" {
		return nil, ErrEmptyGuildID
	}

	if input.GameName == "" {
		return nil, ErrEmptyGameName
	}

	if input.RoleID == "" {
		return nil, ErrEmptyRoleID
	}

	folded := models.FoldGameName(input.GameName)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bindings[input.GuildID] == nil {
		s.bindings[input.GuildID] = map[string]string{}
	}
	s.bindings[input.GuildID][folded] = input.RoleID

	if err := s.repo.Save(ctx, &gameroleRepo.SaveInput{
		Bindings: s.bindings,
	}); err != nil {
		return nil, err
	}

	return &BindGameRoleOutput{FoldedGameName: folded}, nil
}

// ApplyGameRole adds or removes the bound role for a user. An unbound
// game or a stale role is a tolerated no-op. Manager failures are
// returned for the caller to log; they never mutate binding state.
func (s *service) ApplyGameRole(ctx context.Context, input *ApplyGameRoleInput) (*ApplyGameRoleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Action != RoleActionAdd && input.Action != RoleActionRemove {
		return nil, ErrUnknownAction
	}

	s.mu.Lock()
	roleID := ""
	if guildBindings := s.bindings[input.GuildID]; guildBindings != nil {
		roleID = guildBindings[models.FoldGameName(input.GameName)]
	}
	s.mu.Unlock()

	if roleID == "" {
		return &ApplyGameRoleOutput{Applied: false}, nil
	}

	exists, err := s.roleManager.RoleExists(ctx, &RoleExistsInput{
		GuildID: input.GuildID,
		RoleID:  roleID,
	})
	if err != nil {
		return nil, err
	}
	if !exists {
		// Stale binding, the role was deleted out from under us
		return &ApplyGameRoleOutput{Applied: false}, nil
	}

	switch input.Action {
	case RoleActionAdd:
		err = s.roleManager.AddRole(ctx, &AddRoleInput{
			GuildID: input.GuildID,
			UserID:  input.UserID,
			RoleID:  roleID,
			Reason:  fmt.Sprintf("Started playing %s", input.GameName),
		})
	case RoleActionRemove:
		err = s.roleManager.RemoveRole(ctx, &RemoveRoleInput{
			GuildID: input.GuildID,
			UserID:  input.UserID,
			RoleID:  roleID,
			Reason:  fmt.Sprintf("Stopped playing %s", input.GameName),
		})
	}
	if err != nil {
		return nil, err
	}

	return &ApplyGameRoleOutput{Applied: true, RoleID: roleID}, nil
}

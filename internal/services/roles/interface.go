package roles

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gametime/internal/services/roles Service,RoleManager

// Service defines the interface for game-role binding
type Service interface {
	// BindGameRole creates or overwrites the binding from a game name
	// to a role in one guild
	BindGameRole(ctx context.Context, input *BindGameRoleInput) (*BindGameRoleOutput, error)

	// ApplyGameRole adds or removes the bound role for a user. An
	// unbound game or a stale role is a no-op, not an error.
	ApplyGameRole(ctx context.Context, input *ApplyGameRoleInput) (*ApplyGameRoleOutput, error)
}

// RoleManager is the outbound port for role mutations, implemented by
// the Discord layer
type RoleManager interface {
	// AddRole grants a role to a guild member
	AddRole(ctx context.Context, input *AddRoleInput) error

	// RemoveRole revokes a role from a guild member
	RemoveRole(ctx context.Context, input *RemoveRoleInput) error

	// RoleExists reports whether a role still exists in a guild
	RoleExists(ctx context.Context, input *RoleExistsInput) (bool, error)
}

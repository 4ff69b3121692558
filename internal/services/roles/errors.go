package roles

// RoleError is a custom error type for role-binding errors
type RoleError string

// Error implements the error interface
func (e RoleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      RoleError = "config cannot be nil"
	ErrNilRepository  RoleError = "game-role repository cannot be nil"
	ErrNilRoleManager RoleError = "role manager cannot be nil"
	ErrNilInput       RoleError = "input cannot be nil"
	ErrEmptyGuildID   RoleError = "guild ID cannot be empty"
	ErrEmptyGameName  RoleError = "game name cannot be empty"
	ErrEmptyRoleID    RoleError = "role ID cannot be empty"
	ErrUnknownAction  RoleError = "unknown role action"
)

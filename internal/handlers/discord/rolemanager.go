package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
)

// roleManager applies game-role changes through the Discord API
type roleManager struct {
	session *discordgo.Session
}

// NewRoleManager creates the Discord-backed role manager
func NewRoleManager(session *discordgo.Session) rolesSvc.RoleManager {
	return &roleManager{session: session}
}

// AddRole grants a role to a guild member
func (m *roleManager) AddRole(_ context.Context, input *rolesSvc.AddRoleInput) error {
	if err := m.session.GuildMemberRoleAdd(input.GuildID, input.UserID, input.RoleID); err != nil {
		return fmt.Errorf("failed to add role %s to user %s: %w", input.RoleID, input.UserID, err)
	}

	log.Debug().
		Str("guild_id", input.GuildID).
		Str("user_id", input.UserID).
		Str("role_id", input.RoleID).
		Str("reason", input.Reason).
		Msg("role added")
	return nil
}

// RemoveRole revokes a role from a guild member
func (m *roleManager) RemoveRole(_ context.Context, input *rolesSvc.RemoveRoleInput) error {
	if err := m.session.GuildMemberRoleRemove(input.GuildID, input.UserID, input.RoleID); err != nil {
		return fmt.Errorf("failed to remove role %s from user %s: %w", input.RoleID, input.UserID, err)
	}

	log.Debug().
		Str("guild_id", input.GuildID).
		Str("user_id", input.UserID).
		Str("role_id", input.RoleID).
		Str("reason", input.Reason).
		Msg("role removed")
	return nil
}

// RoleExists reports whether a role is still present in the guild, so
// stale bindings become no-ops instead of API errors.
func (m *roleManager) RoleExists(_ context.Context, input *rolesSvc.RoleExistsInput) (bool, error) {
	if _, err := m.session.State.Role(input.GuildID, input.RoleID); err == nil {
		return true, nil
	}

	roles, err := m.session.GuildRoles(input.GuildID)
	if err != nil {
		return false, fmt.Errorf("failed to list roles for guild %s: %w", input.GuildID, err)
	}

	for _, role := range roles {
		if role.ID == input.RoleID {
			return true, nil
		}
	}

	return false, nil
}

package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

// leaderboardLimit caps the rows shown by the leaderboard subcommands
const leaderboardLimit = 10

// GametimeCommand handles the /gametime command
type GametimeCommand struct {
	BaseCommand
	trackerService     tracker.Service
	leaderboardService leaderboardSvc.Service
	rolesService       rolesSvc.Service
	adminRoleName      string
}

// NewGametimeCommand creates a new gametime command handler
func NewGametimeCommand(trackerService tracker.Service, leaderboardService leaderboardSvc.Service, rolesService rolesSvc.Service, adminRoleName string) *GametimeCommand {
	return &GametimeCommand{
		BaseCommand: BaseCommand{
			Name:        "gametime",
			Description: "Playtime tracking commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show this week's playtime leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "topgames",
					Description: "Show this week's most played games",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "whoplays",
					Description: "Show who is currently playing a game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "The game to look for",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bindrole",
					Description: "Bind a role to a game so players get it automatically",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "The game to bind",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "The role players of this game receive",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset this server's playtime leaderboards",
				},
			},
		},
		trackerService:     trackerService,
		leaderboardService: leaderboardService,
		rolesService:       rolesService,
		adminRoleName:      adminRoleName,
	}
}

// Handle processes a Discord interaction for the gametime command
func (c *GametimeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "This command only works inside a server.")
	}

	guildID := i.GuildID
	userID := i.Member.User.ID

	var err error
	switch data.Options[0].Name {
	case "leaderboard":
		err = c.handleLeaderboard(s, i, guildID)
	case "topgames":
		err = c.handleTopGames(s, i, guildID)
	case "whoplays":
		err = c.handleWhoPlays(s, i, guildID, data.Options[0])
	case "bindrole":
		err = c.handleBindRole(s, i, guildID, data.Options[0])
	case "reset":
		err = c.handleReset(s, i, guildID, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleLeaderboard handles the leaderboard subcommand
func (c *GametimeCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	output, err := c.leaderboardService.TopUsers(context.Background(), &leaderboardSvc.TopInput{
		GuildID: guildID,
		Limit:   leaderboardLimit,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", guildID).Msg("failed to load leaderboard")
		return RespondWithError(s, i, "Failed to load the leaderboard.")
	}

	return RespondWithEmbed(s, i, renderUserLeaderboardEmbed(output.Entries))
}

// handleTopGames handles the topgames subcommand
func (c *GametimeCommand) handleTopGames(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	output, err := c.leaderboardService.TopGames(context.Background(), &leaderboardSvc.TopInput{
		GuildID: guildID,
		Limit:   leaderboardLimit,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", guildID).Msg("failed to load top games")
		return RespondWithError(s, i, "Failed to load the most played games.")
	}

	return RespondWithEmbed(s, i, renderTopGamesEmbed(output.Entries))
}

// handleWhoPlays handles the whoplays subcommand
func (c *GametimeCommand) handleWhoPlays(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	gameName := optionString(sub, "game")
	if gameName == "" {
		return RespondWithEphemeralMessage(s, i, "Tell me which game to look for.")
	}

	output, err := c.trackerService.ActivePlayers(context.Background(), &tracker.ActivePlayersInput{
		GuildID:  guildID,
		GameName: gameName,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", guildID).Msg("failed to list active players")
		return RespondWithError(s, i, "Failed to look up active players.")
	}

	return RespondWithEmbed(s, i, renderActivePlayersEmbed(gameName, output.Players))
}

// handleBindRole handles the bindrole subcommand
func (c *GametimeCommand) handleBindRole(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if i.Member.Permissions&discordgo.PermissionManageRoles == 0 {
		return RespondWithEphemeralMessage(s, i, "You need the Manage Roles permission to bind game roles.")
	}

	gameName := optionString(sub, "game")
	role := optionRole(sub, "role", s, guildID)
	if gameName == "" || role == nil {
		return RespondWithEphemeralMessage(s, i, "Both a game and a role are required.")
	}

	output, err := c.rolesService.BindGameRole(context.Background(), &rolesSvc.BindGameRoleInput{
		GuildID:  guildID,
		GameName: gameName,
		RoleID:   role.ID,
	})
	if err != nil {
		log.Error().Err(err).
			Str("guild_id", guildID).
			Str("game_name", gameName).
			Msg("failed to bind game role")
		return RespondWithError(s, i, "Failed to save the role binding.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Players of **%s** will now receive the **%s** role while playing.",
			output.FoldedGameName, role.Name))
}

// handleReset handles the reset subcommand
func (c *GametimeCommand) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string) error {
	allowed, err := c.memberHasAdminRole(s, guildID, i.Member)
	if err != nil {
		log.Error().Err(err).Str("guild_id", guildID).Msg("failed to check admin role")
		return RespondWithError(s, i, "Failed to verify your permissions.")
	}

	if !allowed {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("Only members with the **%s** role can reset the leaderboards.", c.adminRoleName))
	}

	output, err := c.leaderboardService.ResetGuild(context.Background(), &leaderboardSvc.ResetGuildInput{
		GuildID: guildID,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", guildID).Msg("failed to reset leaderboards")
		return RespondWithError(s, i, "Failed to reset the leaderboards.")
	}

	log.Info().
		Str("guild_id", guildID).
		Str("user_id", userID).
		Int("users_cleared", output.UsersCleared).
		Int("games_cleared", output.GamesCleared).
		Msg("leaderboards reset by command")

	return RespondWithMessage(s, i,
		fmt.Sprintf("🧹 Leaderboards reset: %d players and %d games cleared.",
			output.UsersCleared, output.GamesCleared))
}

// memberHasAdminRole reports whether the member carries the configured
// admin role, matched by name
func (c *GametimeCommand) memberHasAdminRole(s *discordgo.Session, guildID string, member *discordgo.Member) (bool, error) {
	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			roles, listErr := s.GuildRoles(guildID)
			if listErr != nil {
				return false, listErr
			}
			for _, r := range roles {
				if r.ID == roleID && r.Name == c.adminRoleName {
					return true, nil
				}
			}
			continue
		}

		if role.Name == c.adminRoleName {
			return true, nil
		}
	}

	return false, nil
}

// optionString pulls a string argument out of a subcommand
func optionString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// optionRole pulls a role argument out of a subcommand
func optionRole(sub *discordgo.ApplicationCommandInteractionDataOption, name string, s *discordgo.Session, guildID string) *discordgo.Role {
	for _, opt := range sub.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionRole {
			return opt.RoleValue(s, guildID)
		}
	}
	return nil
}

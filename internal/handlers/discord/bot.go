package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	leaderboardSvc "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	rolesSvc "github.com/KirkDiggler/gametime/internal/services/roles"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

// Defaults for the bot configuration
const (
	DefaultAnnounceChannelName = "presence-update"
	DefaultAdminRoleName       = "Gametime Admin"
	DefaultSweepInterval       = time.Minute
	DefaultFlushInterval       = 5 * time.Minute
	DefaultWeeklyCheckInterval = 24 * time.Hour
)

// Bot represents the Discord bot instance
type Bot struct {
	session            *discordgo.Session
	commands           map[string]CommandHandler
	commandIDs         map[string]string // Maps command name to command ID
	trackerService     tracker.Service
	leaderboardService leaderboardSvc.Service
	rolesService       rolesSvc.Service
	resolver           *channelResolver
	config             *Config

	statusMu   sync.Mutex
	lastStatus map[string]discordgo.Status // "guildID:userID" -> status

	done chan struct{}
	wg   sync.WaitGroup
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the discordgo session, not yet opened
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Tracker service
	TrackerService tracker.Service

	// Leaderboard service
	LeaderboardService leaderboardSvc.Service

	// Roles service
	RolesService rolesSvc.Service

	// AnnounceChannelName is the per-guild channel announcements go to
	AnnounceChannelName string

	// AdminRoleName gates the reset subcommand
	AdminRoleName string

	// SweepInterval is the base job tick (milestone sweep)
	SweepInterval time.Duration

	// FlushInterval is how often in-progress playtime is settled
	FlushInterval time.Duration

	// WeeklyCheckInterval is how often the weekly reset guard runs
	WeeklyCheckInterval time.Duration
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.RolesService == nil {
		return nil, errors.New("roles service cannot be nil")
	}

	if cfg.AnnounceChannelName == "" {
		cfg.AnnounceChannelName = DefaultAnnounceChannelName
	}

	if cfg.AdminRoleName == "" {
		cfg.AdminRoleName = DefaultAdminRoleName
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}

	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}

	if cfg.WeeklyCheckInterval <= 0 {
		cfg.WeeklyCheckInterval = DefaultWeeklyCheckInterval
	}

	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages

	bot := &Bot{
		session:            cfg.Session,
		commands:           make(map[string]CommandHandler),
		commandIDs:         make(map[string]string),
		trackerService:     cfg.TrackerService,
		leaderboardService: cfg.LeaderboardService,
		rolesService:       cfg.RolesService,
		resolver:           newChannelResolver(cfg.Session, cfg.AnnounceChannelName),
		config:             cfg,
		lastStatus:         make(map[string]discordgo.Status),
		done:               make(chan struct{}),
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleGuildCreate)
	cfg.Session.AddHandler(bot.handlePresenceUpdate)

	return bot, nil
}

// Start opens the Discord connection, registers commands and launches
// the background jobs
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	gametimeCmd := NewGametimeCommand(b.trackerService, b.leaderboardService, b.rolesService, b.config.AdminRoleName)
	if err := b.RegisterCommand(gametimeCmd); err != nil {
		return fmt.Errorf("failed to register gametime command: %w", err)
	}

	b.wg.Add(1)
	go b.runJobs()

	log.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the bot: jobs first, then a final flush
// so in-progress playtime is settled, then the Discord connection
func (b *Bot) Stop() error {
	close(b.done)
	b.wg.Wait()

	if _, err := b.trackerService.FlushSessions(context.Background()); err != nil {
		log.Error().Err(err).Msg("final flush failed")
	}

	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	guildID := b.config.GuildID
	if guildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild_id", guildID).Msg("registering guild command")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Error().Err(err).
				Str("command", i.ApplicationCommandData().Name).
				Msg("command handling failed")
		}
	}
}

// runJobs drives the periodic sweeps off a single ticker so a flush
// always lands before the milestone sweep in the same tick
func (b *Bot) runJobs() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.config.SweepInterval)
	defer ticker.Stop()

	lastFlush := time.Now()
	lastWeeklyCheck := time.Now()

	for {
		select {
		case <-b.done:
			return
		case now := <-ticker.C:
			ctx := context.Background()

			if now.Sub(lastFlush) >= b.config.FlushInterval {
				lastFlush = now
				if output, err := b.trackerService.FlushSessions(ctx); err != nil {
					log.Error().Err(err).Msg("flush sweep failed")
				} else if output.Flushed > 0 {
					log.Debug().
						Int("sessions", output.Flushed).
						Int64("seconds", output.CreditedSeconds).
						Msg("settled in-progress playtime")
				}
			}

			if _, err := b.trackerService.SweepMilestones(ctx); err != nil {
				log.Error().Err(err).Msg("milestone sweep failed")
			}

			if now.Sub(lastWeeklyCheck) >= b.config.WeeklyCheckInterval {
				lastWeeklyCheck = now
				if output, err := b.trackerService.RunWeeklyReset(ctx); err != nil {
					log.Error().Err(err).Msg("weekly reset failed")
				} else if output.Ran {
					log.Info().
						Int("guilds_processed", output.GuildsProcessed).
						Int("guilds_skipped", output.GuildsSkipped).
						Msg("weekly reset completed")
				}
			}
		}
	}
}

// announceChannelID resolves a guild's announcement channel, returning
// an empty string when the guild has none
func (b *Bot) announceChannelID(_ *discordgo.Session, guildID string) string {
	channelID, err := b.resolver.resolve(guildID, "")
	if err != nil {
		log.Debug().Err(err).Str("guild_id", guildID).Msg("no announcement channel")
		return ""
	}
	return channelID
}

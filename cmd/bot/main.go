package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/common/clock"
	"github.com/KirkDiggler/gametime/internal/common/uuid"
	"github.com/KirkDiggler/gametime/internal/handlers/discord"
	gameroleRepo "github.com/KirkDiggler/gametime/internal/repositories/gamerole"
	leaderboardRepo "github.com/KirkDiggler/gametime/internal/repositories/leaderboard"
	sessionRepo "github.com/KirkDiggler/gametime/internal/repositories/session"
	leaderboardService "github.com/KirkDiggler/gametime/internal/services/leaderboard"
	rolesService "github.com/KirkDiggler/gametime/internal/services/roles"
	trackerService "github.com/KirkDiggler/gametime/internal/services/tracker"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	setupLogging()

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	// Initialize repositories
	sessions, leaderboards, gameroles := buildRepositories()

	// Initialize services
	leaderboardSvc, err := leaderboardService.New(&leaderboardService.Config{
		Repo: leaderboards,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create leaderboard service")
	}

	rolesSvc, err := rolesService.New(&rolesService.Config{
		Repo:        gameroles,
		RoleManager: discord.NewRoleManager(session),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create roles service")
	}

	announceChannel := getEnv("ANNOUNCE_CHANNEL", discord.DefaultAnnounceChannelName)

	trackerSvc, err := trackerService.New(&trackerService.Config{
		SessionRepo:   sessions,
		Leaderboard:   leaderboardSvc,
		Roles:         rolesSvc,
		Notifier:      discord.NewNotifier(session, announceChannel),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		ResetWeekday:  parseWeekday(getEnv("RESET_WEEKDAY", "Sunday")),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create tracker service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:             session,
		ApplicationID:       getEnv("APPLICATION_ID", ""),
		GuildID:             getEnv("GUILD_ID", ""),
		TrackerService:      trackerSvc,
		LeaderboardService:  leaderboardSvc,
		RolesService:        rolesSvc,
		AnnounceChannelName: announceChannel,
		AdminRoleName:       getEnv("ADMIN_ROLE", discord.DefaultAdminRoleName),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}

// buildRepositories picks the persistence backend from STORE_BACKEND:
// JSON documents on disk by default, redis when asked for.
func buildRepositories() (sessionRepo.Repository, leaderboardRepo.Repository, gameroleRepo.Repository) {
	backend := strings.ToLower(getEnv("STORE_BACKEND", "file"))

	switch backend {
	case "file":
		dataDir := getEnv("DATA_DIR", "data")

		sessions, err := sessionRepo.NewFile(&sessionRepo.FileConfig{
			Path: filepath.Join(dataDir, "sessions.json"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create session repository")
		}

		leaderboards, err := leaderboardRepo.NewFile(&leaderboardRepo.FileConfig{
			UserPath: filepath.Join(dataDir, "leaderboard_users.json"),
			GamePath: filepath.Join(dataDir, "leaderboard_games.json"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create leaderboard repository")
		}

		gameroles, err := gameroleRepo.NewFile(&gameroleRepo.FileConfig{
			Path: filepath.Join(dataDir, "gameroles.json"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create game role repository")
		}

		return sessions, leaderboards, gameroles

	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}

		sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create session repository")
		}

		leaderboards, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create leaderboard repository")
		}

		gameroles, err := gameroleRepo.NewRedis(&gameroleRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create game role repository")
		}

		return sessions, leaderboards, gameroles

	default:
		log.Fatal().Str("backend", backend).Msg("unknown STORE_BACKEND, want file or redis")
		return nil, nil, nil
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if getEnv("LOG_PRETTY", "") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// parseWeekday maps a weekday name to time.Weekday, defaulting to
// Sunday on anything unrecognized
func parseWeekday(name string) time.Weekday {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day
		}
	}

	log.Warn().Str("weekday", name).Msg("unrecognized RESET_WEEKDAY, using Sunday")
	return time.Sunday
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/models"
)

const sessionsKey = "gametime:sessions"

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Load retrieves the session table from Redis
func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, sessionsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{Sessions: map[string]*models.PlaySession{}}, nil
		}
		return nil, fmt.Errorf("failed to get session document: %w", err)
	}

	sessions := map[string]*models.PlaySession{}
	if err := json.Unmarshal([]byte(data), &sessions); err != nil {
		log.Warn().Err(err).Msg("Malformed session document in Redis, starting empty")
		return &LoadOutput{Sessions: map[string]*models.PlaySession{}}, nil
	}

	for userID, s := range sessions {
		if s == nil {
			delete(sessions, userID)
			continue
		}
		if s.MilestonesHit == nil {
			s.MilestonesHit = []int{}
		}
		if s.LastSettledTime.IsZero() {
			s.LastSettledTime = s.StartTime
		}
	}

	return &LoadOutput{Sessions: sessions}, nil
}

// Save overwrites the session table in Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Sessions == nil {
		return errors.New("input and sessions cannot be nil")
	}

	data, err := json.Marshal(input.Sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	if err := r.client.Set(ctx, sessionsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session document: %w", err)
	}

	return nil
}

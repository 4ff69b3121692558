package gamerole

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/models"
)

const bindingsKey = "gametime:gameroles"

// Config holds configuration for the Redis game-role repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game-role repository
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

// Load retrieves the binding document from Redis
func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, bindingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{Bindings: models.RoleBindings{}}, nil
		}
		return nil, fmt.Errorf("failed to get binding document: %w", err)
	}

	bindings := models.RoleBindings{}
	if err := json.Unmarshal([]byte(data), &bindings); err != nil {
		log.Warn().Err(err).Msg("Malformed binding document in Redis, starting empty")
		return &LoadOutput{Bindings: models.RoleBindings{}}, nil
	}

	return &LoadOutput{Bindings: bindings}, nil
}

// Save overwrites the binding document in Redis
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Bindings == nil {
		return errors.New("input and bindings cannot be nil")
	}

	data, err := json.Marshal(input.Bindings)
	if err != nil {
		return fmt.Errorf("failed to marshal bindings: %w", err)
	}

	if err := r.client.Set(ctx, bindingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save binding document: %w", err)
	}

	return nil
}

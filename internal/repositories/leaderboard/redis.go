package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Keys for the two leaderboard documents
	userTotalsKey = "gametime:leaderboard:users"
	gameTotalsKey = "gametime:leaderboard:games"
)

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
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

// LoadUserTotals retrieves the user playtime document from Redis
func (r *redisRepository) LoadUserTotals(ctx context.Context) (*LoadUserTotalsOutput, error) {
	totals, err := r.loadTotals(ctx, userTotalsKey)
	if err != nil {
		return nil, err
	}
	return &LoadUserTotalsOutput{Totals: totals}, nil
}

// SaveUserTotals overwrites the user playtime document in Redis
func (r *redisRepository) SaveUserTotals(ctx context.Context, input *SaveUserTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return r.saveTotals(ctx, userTotalsKey, input.Totals)
}

// LoadGameTotals retrieves the game playtime document from Redis
func (r *redisRepository) LoadGameTotals(ctx context.Context) (*LoadGameTotalsOutput, error) {
	totals, err := r.loadTotals(ctx, gameTotalsKey)
	if err != nil {
		return nil, err
	}
	return &LoadGameTotalsOutput{Totals: totals}, nil
}

// SaveGameTotals overwrites the game playtime document in Redis
func (r *redisRepository) SaveGameTotals(ctx context.Context, input *SaveGameTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return r.saveTotals(ctx, gameTotalsKey, input.Totals)
}

func (r *redisRepository) loadTotals(ctx context.Context, key string) (map[string]map[string]int64, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return map[string]map[string]int64{}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard document: %w", err)
	}

	totals := map[string]map[string]int64{}
	if err := json.Unmarshal([]byte(data), &totals); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Malformed leaderboard document in Redis, starting empty")
		return map[string]map[string]int64{}, nil
	}

	return totals, nil
}

func (r *redisRepository) saveTotals(ctx context.Context, key string, totals map[string]map[string]int64) error {
	data, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard document: %w", err)
	}

	return nil
}

package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileConfig holds configuration for the file-backed leaderboard
// repository
type FileConfig struct {
	// UserPath is the user playtime document location
	UserPath string

	// GamePath is the game playtime document location
	GamePath string
}

// fileRepository implements the Repository interface using JSON
// documents on local disk
type fileRepository struct {
	userPath string
	gamePath string
}

// NewFile creates a new file-backed leaderboard repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UserPath == "" || cfg.GamePath == "" {
		return nil, errors.New("user path and game path cannot be empty")
	}

	for _, p := range []string{cfg.UserPath, cfg.GamePath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &fileRepository{
		userPath: cfg.UserPath,
		gamePath: cfg.GamePath,
	}, nil
}

// LoadUserTotals reads the user playtime document from disk
func (r *fileRepository) LoadUserTotals(_ context.Context) (*LoadUserTotalsOutput, error) {
	totals, err := loadTotalsFile(r.userPath)
	if err != nil {
		return nil, err
	}
	return &LoadUserTotalsOutput{Totals: totals}, nil
}

// SaveUserTotals overwrites the user playtime document on disk
func (r *fileRepository) SaveUserTotals(_ context.Context, input *SaveUserTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return writeTotalsFile(r.userPath, input.Totals)
}

// LoadGameTotals reads the game playtime document from disk
func (r *fileRepository) LoadGameTotals(_ context.Context) (*LoadGameTotalsOutput, error) {
	totals, err := loadTotalsFile(r.gamePath)
	if err != nil {
		return nil, err
	}
	return &LoadGameTotalsOutput{Totals: totals}, nil
}

// SaveGameTotals overwrites the game playtime document on disk
func (r *fileRepository) SaveGameTotals(_ context.Context, input *SaveGameTotalsInput) error {
	if input == nil || input.Totals == nil {
		return errors.New("input and totals cannot be nil")
	}
	return writeTotalsFile(r.gamePath, input.Totals)
}

func loadTotalsFile(path string) (map[string]map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]map[string]int64{}, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard document: %w", err)
	}

	totals := map[string]map[string]int64{}
	if err := json.Unmarshal(data, &totals); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed leaderboard document, starting empty")
		return map[string]map[string]int64{}, nil
	}

	for guildID, guildTotals := range totals {
		if guildTotals == nil {
			totals[guildID] = map[string]int64{}
		}
	}

	return totals, nil
}

func writeTotalsFile(path string, totals map[string]map[string]int64) error {
	data, err := json.MarshalIndent(totals, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write leaderboard document: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace leaderboard document: %w", err)
	}

	return nil
}

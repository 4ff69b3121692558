package gamerole

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/models"
)

// FileConfig holds configuration for the file-backed game-role
// repository
type FileConfig struct {
	// Path is the JSON document location on disk
	Path string
}

// fileRepository implements the Repository interface using a JSON
// document on local disk
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed game-role repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// Load reads the binding document from disk. A missing or malformed
// document is a cold start, not an error.
func (r *fileRepository) Load(_ context.Context) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadOutput{Bindings: models.RoleBindings{}}, nil
		}
		return nil, fmt.Errorf("failed to read binding document: %w", err)
	}

	bindings := models.RoleBindings{}
	if err := json.Unmarshal(data, &bindings); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("Malformed binding document, starting empty")
		return &LoadOutput{Bindings: models.RoleBindings{}}, nil
	}

	for guildID, guildBindings := range bindings {
		if guildBindings == nil {
			bindings[guildID] = map[string]string{}
		}
	}

	return &LoadOutput{Bindings: bindings}, nil
}

// Save overwrites the binding document on disk via temp file + rename
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Bindings == nil {
		return errors.New("input and bindings cannot be nil")
	}

	data, err := json.MarshalIndent(input.Bindings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bindings: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write binding document: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace binding document: %w", err)
	}

	return nil
}

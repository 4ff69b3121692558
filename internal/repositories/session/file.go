package session

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

// FileConfig holds configuration for the file-backed session repository
type FileConfig struct {
	// Path is the JSON document location on disk
	Path string
}

// fileRepository implements the Repository interface using a JSON
// document on local disk
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed session repository
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

// Load reads the session table from disk. A missing or malformed
// document is a cold start, not an error.
func (r *fileRepository) Load(_ context.Context) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadOutput{Sessions: map[string]*models.PlaySession{}}, nil
		}
		return nil, fmt.Errorf("failed to read session document: %w", err)
	}

	sessions := map[string]*models.PlaySession{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("Malformed session document, starting empty")
		return &LoadOutput{Sessions: map[string]*models.PlaySession{}}, nil
	}

	// Default fields the document may be missing
	for userID, s := range sessions {
		if s == nil {
			delete(sessions, userID)
			continue
		}
		if s.UserID == "" {
			s.UserID = userID
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

// Save overwrites the session table on disk. The write goes to a
// temporary file which is renamed into place, so a crash mid-write
// cannot leave an unparsable document.
func (r *fileRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Sessions == nil {
		return errors.New("input and sessions cannot be nil")
	}

	data, err := json.MarshalIndent(input.Sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session document: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace session document: %w", err)
	}

	return nil
}

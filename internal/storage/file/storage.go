// Package file mirrors the profile store to a single JSON document on disk.
//
// The whole document is rewritten after every mutation. Write failures are
// logged and otherwise ignored, so the in-memory copy stays authoritative and
// a crash between a mutation and its write loses that update.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
	"github.com/mcoot/botarena/internal/storage/memory"
)

// Storage keeps profiles in memory and mirrors them to Path
type Storage struct {
	// mu serialises mutation and file write so the file never lags behind a
	// later mutation
	mu     sync.Mutex
	mem    *memory.Storage
	path   string
	logger *slog.Logger
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Open loads the profile file at path. A missing file is an empty store; an
// unreadable or corrupt one is logged and also treated as empty.
func Open(path string, logger *slog.Logger) (*Storage, error) {
	if path == "" {
		return nil, errors.New("profile file path is required")
	}

	s := &Storage{
		mem:    memory.New(),
		path:   filepath.Clean(path),
		logger: logger,
	}

	profiles, err := readProfiles(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("profile file not found, starting empty", slog.String("path", s.path))
	case err != nil:
		logger.Error("failed to load profile file",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
	default:
		s.mem.Load(profiles)
		logger.Info("loaded profiles from file",
			slog.String("path", s.path),
			slog.Int("count", len(profiles)),
		)
	}

	return s, nil
}

func readProfiles(path string) (map[model.ProfileID]*model.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	profiles := make(map[model.ProfileID]*model.Profile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	for id, p := range profiles {
		if p == nil {
			delete(profiles, id)
			continue
		}
		// Older files key profiles by id without repeating it in the record
		p.ID = id
	}
	return profiles, nil
}

// Path returns the location of the mirrored file
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	return s.mem.GetProfile(ctx, id)
}

func (s *Storage) CreateProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.CreateProfile(ctx, profile); err != nil {
		return err
	}
	s.save()
	return nil
}

func (s *Storage) MutateProfile(ctx context.Context, id model.ProfileID, fn storage.MutateFunc) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.mem.MutateProfile(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	s.save()
	return updated, nil
}

func (s *Storage) ResetProfiles(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.ResetProfiles(ctx); err != nil {
		return err
	}
	s.save()
	return nil
}

func (s *Storage) Close() error {
	return nil
}

// save rewrites the whole file from the in-memory state. Callers hold mu.
func (s *Storage) save() {
	data, err := json.MarshalIndent(s.mem.Snapshot(), "", "  ")
	if err != nil {
		s.logger.Error("failed to encode profiles", slog.String("error", err.Error()))
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("failed to save profiles",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("profiles saved to file", slog.String("path", s.path))
}

package memory

import (
	"context"
	"sync"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu       sync.RWMutex
	profiles map[model.ProfileID]*model.Profile
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[model.ProfileID]*model.Profile),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (s *Storage) CreateProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; ok {
		return model.ErrProfileExists
	}
	s.profiles[profile.ID] = profile.Clone()
	return nil
}

func (s *Storage) MutateProfile(ctx context.Context, id model.ProfileID, fn storage.MutateFunc) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	updated := p.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	s.profiles[id] = updated
	return updated.Clone(), nil
}

func (s *Storage) ResetProfiles(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[model.ProfileID]*model.Profile)
	return nil
}

func (s *Storage) Close() error {
	return nil
}

// Snapshot returns copies of every stored profile keyed by id
func (s *Storage) Snapshot() map[model.ProfileID]*model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.ProfileID]*model.Profile, len(s.profiles))
	for id, p := range s.profiles {
		out[id] = p.Clone()
	}
	return out
}

// Load replaces the stored profiles
func (s *Storage) Load(profiles map[model.ProfileID]*model.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[model.ProfileID]*model.Profile, len(profiles))
	for id, p := range profiles {
		s.profiles[id] = p.Clone()
	}
}

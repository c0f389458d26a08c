package storage

import (
	"context"

	"github.com/mcoot/botarena/internal/model"
)

// MutateFunc changes a profile in place. Returning an error aborts the
// mutation and nothing is persisted.
type MutateFunc func(p *model.Profile) error

// Store defines the interface for profile persistence
type Store interface {
	// GetProfile returns a copy of the stored profile or model.ErrProfileNotFound
	GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error)

	// CreateProfile stores a new profile, failing with model.ErrProfileExists
	// if the id is taken
	CreateProfile(ctx context.Context, profile *model.Profile) error

	// MutateProfile applies fn to the stored profile, persists the result and
	// returns a copy of it
	MutateProfile(ctx context.Context, id model.ProfileID, fn MutateFunc) (*model.Profile, error)

	// ResetProfiles removes every profile
	ResetProfiles(ctx context.Context) error

	// Close releases any underlying connections or files
	Close() error
}

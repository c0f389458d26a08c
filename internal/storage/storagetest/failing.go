package storagetest

import (
	"context"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

// FailingStore fails every call with Err, standing in for an unreachable
// backend
type FailingStore struct {
	Err error
}

var _ storage.Store = FailingStore{}

func (f FailingStore) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	return nil, f.Err
}

func (f FailingStore) CreateProfile(ctx context.Context, profile *model.Profile) error {
	return f.Err
}

func (f FailingStore) MutateProfile(ctx context.Context, id model.ProfileID, fn storage.MutateFunc) (*model.Profile, error) {
	return nil, f.Err
}

func (f FailingStore) ResetProfiles(ctx context.Context) error {
	return f.Err
}

func (f FailingStore) Close() error {
	return nil
}

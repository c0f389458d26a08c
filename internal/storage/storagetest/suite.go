// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

// Suite runs the store contract against the backend built by NewStore
type Suite struct {
	suite.Suite

	// NewStore returns an empty store for one test
	NewStore func(t *testing.T) storage.Store

	Store storage.Store
	Ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.Store = s.NewStore(s.T())
	s.Ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.Store != nil {
		_ = s.Store.Close()
	}
}

func newProfile(id string) *model.Profile {
	return model.NewProfile(model.ProfileID(id), "Nick-"+id, model.RaceElf,
		model.Allocation{HP: 2, Power: 1, Agility: 1, Protection: 1})
}

func (s *Suite) TestCreateAndGetProfile() {
	p := newProfile("u1")

	s.Require().NoError(s.Store.CreateProfile(s.Ctx, p))

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.Equal(p, got)
}

func (s *Suite) TestGetProfileNotFound() {
	_, err := s.Store.GetProfile(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *Suite) TestCreateProfileTwiceFails() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))

	other := newProfile("u1")
	other.Nickname = "Impostor"
	err := s.Store.CreateProfile(s.Ctx, other)
	s.ErrorIs(err, model.ErrProfileExists)

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.Equal("Nick-u1", got.Nickname)
}

func (s *Suite) TestGetReturnsCopy() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	got.HP = 999

	again, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.NotEqual(999, again.HP)
}

func (s *Suite) TestMutateProfilePersists() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))

	updated, err := s.Store.MutateProfile(s.Ctx, "u1", func(p *model.Profile) error {
		p.Power += 3
		p.ExtraPoints = 0
		return nil
	})
	s.Require().NoError(err)
	s.Equal(model.BasePower+1+3, updated.Power)
	s.Equal(0, updated.ExtraPoints)

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.Equal(updated, got)
}

func (s *Suite) TestMutateProfileNotFound() {
	called := false
	_, err := s.Store.MutateProfile(s.Ctx, "missing", func(p *model.Profile) error {
		called = true
		return nil
	})
	s.ErrorIs(err, model.ErrProfileNotFound)
	s.False(called)
}

func (s *Suite) TestMutateProfileErrorDiscardsChanges() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))
	boom := errors.New("boom")

	_, err := s.Store.MutateProfile(s.Ctx, "u1", func(p *model.Profile) error {
		p.HP = 1
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.Equal(model.BaseHP+2, got.HP)
}

func (s *Suite) TestConcurrentMutationsAreNotLost() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Store.MutateProfile(s.Ctx, "u1", func(p *model.Profile) error {
				p.Experience++
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.Store.GetProfile(s.Ctx, "u1")
	s.Require().NoError(err)
	s.Equal(workers, got.Experience)
}

func (s *Suite) TestResetProfiles() {
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))
	s.Require().NoError(s.Store.CreateProfile(s.Ctx, newProfile("u2")))

	s.Require().NoError(s.Store.ResetProfiles(s.Ctx))

	_, err := s.Store.GetProfile(s.Ctx, "u1")
	s.ErrorIs(err, model.ErrProfileNotFound)
	_, err = s.Store.GetProfile(s.Ctx, "u2")
	s.ErrorIs(err, model.ErrProfileNotFound)

	// Ids are free again after a reset
	s.NoError(s.Store.CreateProfile(s.Ctx, newProfile("u1")))
}

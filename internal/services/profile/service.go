package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

// CreateRequest carries the fields needed to create a profile. A nil
// Allocation means the client sent none.
type CreateRequest struct {
	ID         string
	Nickname   string
	Race       string
	Allocation model.RawAllocation
}

// Service manages player profiles and their point distribution
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a new profile Service
func New(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With(slog.String("component", "profile")),
	}
}

// Create validates the request and stores a new level 1 profile.
// Checks run in order: missing fields, race, allocation shape, allocation
// total, then uniqueness.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Profile, error) {
	id := strings.TrimSpace(req.ID)
	nickname := strings.TrimSpace(req.Nickname)

	var missing []string
	if id == "" {
		missing = append(missing, "telegram_id")
	}
	if nickname == "" {
		missing = append(missing, "nickname")
	}
	if strings.TrimSpace(req.Race) == "" {
		missing = append(missing, "race")
	}
	if req.Allocation == nil {
		missing = append(missing, "extra_points")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}

	race, ok := model.ParseRace(strings.ToLower(strings.TrimSpace(req.Race)))
	if !ok {
		return nil, model.NewValidationError(model.ErrInvalidRace,
			"Invalid race %q. Choose one of: human, elf, dwarf, orc.", req.Race)
	}

	alloc, err := req.Allocation.Exact()
	if err != nil {
		return nil, err
	}
	if alloc.Total() != model.CreationPoints {
		return nil, exactPointsError(model.CreationPoints)
	}

	p := model.NewProfile(model.ProfileID(id), nickname, race, alloc)
	if err := s.store.CreateProfile(ctx, p); err != nil {
		if errors.Is(err, model.ErrProfileExists) {
			return nil, model.NewValidationError(model.ErrProfileExists,
				"Profile %s already exists.", id)
		}
		return nil, err
	}

	s.logger.Info("profile created",
		slog.String("profile_id", id),
		slog.String("race", string(race)),
	)
	return p, nil
}

// Get returns the stored profile or model.ErrProfileNotFound
func (s *Service) Get(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	return s.store.GetProfile(ctx, id)
}

// Lookup reports whether a profile exists. An unknown id is not an error.
func (s *Service) Lookup(ctx context.Context, id model.ProfileID) (*model.Profile, bool, error) {
	p, err := s.store.GetProfile(ctx, id)
	if errors.Is(err, model.ErrProfileNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Allocate distributes every pending extra point. The allocation must name
// all four attributes and add up to exactly the profile's extraPoints.
func (s *Service) Allocate(ctx context.Context, id string, raw model.RawAllocation) (*model.Profile, error) {
	if err := requireTarget(id, raw, "allocation"); err != nil {
		return nil, err
	}

	var spent int
	p, err := s.store.MutateProfile(ctx, model.ProfileID(strings.TrimSpace(id)), func(p *model.Profile) error {
		alloc, err := raw.Exact()
		if err != nil {
			return err
		}
		if alloc.Total() != p.ExtraPoints {
			return exactPointsError(p.ExtraPoints)
		}
		p.Stats = p.Stats.Apply(alloc)
		p.ExtraPoints = 0
		spent = alloc.Total()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("points allocated",
		slog.String("profile_id", string(p.ID)),
		slog.Int("points", spent),
	)
	return p, nil
}

// Spend applies a partial allocation. Missing attributes count as zero and
// the total may be anything up to the profile's extraPoints.
func (s *Service) Spend(ctx context.Context, id string, raw model.RawAllocation) (*model.Profile, error) {
	if err := requireTarget(id, raw, "points"); err != nil {
		return nil, err
	}

	var spent int
	p, err := s.store.MutateProfile(ctx, model.ProfileID(strings.TrimSpace(id)), func(p *model.Profile) error {
		alloc, err := raw.Partial()
		if err != nil {
			return err
		}
		if alloc.Total() > p.ExtraPoints {
			return model.NewValidationError(model.ErrNotEnoughPoints,
				"Not enough extra points: %d requested, %d available.", alloc.Total(), p.ExtraPoints)
		}
		p.Stats = p.Stats.Apply(alloc)
		p.ExtraPoints -= alloc.Total()
		spent = alloc.Total()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("points spent",
		slog.String("profile_id", string(p.ID)),
		slog.Int("points", spent),
		slog.Int("remaining", p.ExtraPoints),
	)
	return p, nil
}

// Reset removes every profile
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.ResetProfiles(ctx); err != nil {
		return err
	}
	s.logger.Warn("all profiles reset")
	return nil
}

func requireTarget(id string, raw model.RawAllocation, field string) error {
	var missing []string
	if strings.TrimSpace(id) == "" {
		missing = append(missing, "telegram_id")
	}
	if raw == nil {
		missing = append(missing, field)
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}
	return nil
}

func missingFields(fields ...string) error {
	return model.NewValidationError(model.ErrMissingField,
		"Missing required field(s): %s.", strings.Join(fields, ", "))
}

func exactPointsError(points int) error {
	return model.NewValidationError(model.ErrAllocationMismatch,
		"You must distribute exactly %d points.", points)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

// ErrMutateConflict is returned when a profile keeps changing underneath an
// optimistic transaction
var ErrMutateConflict = errors.New("profile was modified concurrently")

// scanBatch is the SCAN COUNT hint used when resetting
const scanBatch = 100

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.MaxMutateRetries <= 0 {
		cfg.MaxMutateRetries = DefaultConfig().MaxMutateRetries
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	data, err := s.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}
	return decodeProfile(data)
}

func (s *Storage) CreateProfile(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, profileKey(profile.ID), data, s.cfg.ProfileTTL).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrProfileExists
	}
	return nil
}

func (s *Storage) MutateProfile(ctx context.Context, id model.ProfileID, fn storage.MutateFunc) (*model.Profile, error) {
	key := profileKey(id)

	var updated *model.Profile
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrProfileNotFound
			}
			return err
		}

		p, err := decodeProfile(data)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}

		out, err := json.Marshal(p)
		if err != nil {
			return err
		}

		// Only executes if the watched key is unchanged
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.cfg.ProfileTTL)
			return nil
		})
		if err != nil {
			return err
		}
		updated = p
		return nil
	}

	for i := 0; i < s.cfg.MaxMutateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrMutateConflict
}

func (s *Storage) ResetProfiles(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, profileKeyPattern(), scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func decodeProfile(data []byte) (*model.Profile, error) {
	var p model.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/botarena/internal/dependencies/random"
	"github.com/mcoot/botarena/internal/services/bot"
	"github.com/mcoot/botarena/internal/services/combat"
	"github.com/mcoot/botarena/internal/services/fight"
	"github.com/mcoot/botarena/internal/services/profile"
	"github.com/mcoot/botarena/internal/storage"
	"github.com/mcoot/botarena/internal/storage/file"
	"github.com/mcoot/botarena/internal/storage/memory"
	redisstorage "github.com/mcoot/botarena/internal/storage/redis"
	"github.com/mcoot/botarena/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Random random.Random

	// Services
	BotStrategy     bot.Strategy
	Resolver        *combat.Resolver
	ProfileService  *profile.Service
	FightController *fight.Controller
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// DataFile is the JSON profile file (required if StorageType is "file")
	DataFile string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, random.New(), logger), nil
}

func newStore(cfg Config, logger *slog.Logger) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeFile:
		return file.Open(cfg.DataFile, logger.With(slog.String("component", "storage")))
	case StorageTypeSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return store, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be file, memory, redis or sqlite", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, rnd random.Random, logger *slog.Logger) *App {
	strategy := bot.NewRandomStrategy(rnd)
	resolver := combat.NewResolver(rnd)
	profileService := profile.New(store, logger)
	fightController := fight.NewController(store, strategy, resolver, logger)

	return &App{
		Storage:         store,
		Random:          rnd,
		BotStrategy:     strategy,
		Resolver:        resolver,
		ProfileService:  profileService,
		FightController: fightController,
	}
}

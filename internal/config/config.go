// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends accepted by BOTARENA_STORAGE_TYPE
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds every server setting
type Config struct {
	Host string `env:"BOTARENA_HOST"`
	Port int    `env:"BOTARENA_PORT" envDefault:"8080"`

	StorageType string `env:"BOTARENA_STORAGE_TYPE" envDefault:"file"`
	DataFile    string `env:"BOTARENA_DATA_FILE" envDefault:"playerProfiles.json"`
	SQLitePath  string `env:"BOTARENA_SQLITE_PATH" envDefault:"botarena.db"`

	RedisURL        string        `env:"BOTARENA_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisPoolSize   int           `env:"BOTARENA_REDIS_POOL_SIZE" envDefault:"10"`
	RedisProfileTTL time.Duration `env:"BOTARENA_REDIS_PROFILE_TTL" envDefault:"0s"`

	StaticDir   string `env:"BOTARENA_STATIC_DIR"`
	EnableReset bool   `env:"BOTARENA_ENABLE_RESET" envDefault:"false"`
	LogLevel    string `env:"BOTARENA_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then parses
// the process environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return parse(env.Options{})
}

// FromMap parses settings from the given variables instead of the process
// environment
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageType = strings.ToLower(strings.TrimSpace(cfg.StorageType))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the tags cannot express
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("BOTARENA_PORT out of range: %d", c.Port)
	}
	switch c.StorageType {
	case StorageFile:
		if c.DataFile == "" {
			return errors.New("BOTARENA_DATA_FILE is required for file storage")
		}
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("BOTARENA_REDIS_URL is required for redis storage")
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return errors.New("BOTARENA_SQLITE_PATH is required for sqlite storage")
		}
	default:
		return fmt.Errorf("unknown BOTARENA_STORAGE_TYPE %q: must be file, memory, redis or sqlite", c.StorageType)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid BOTARENA_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageType)
	assert.Equal(t, "playerProfiles.json", cfg.DataFile)
	assert.Equal(t, "botarena.db", cfg.SQLitePath)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Zero(t, cfg.RedisProfileTTL)
	assert.Equal(t, "", cfg.StaticDir)
	assert.False(t, cfg.EnableReset)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"BOTARENA_HOST":              "127.0.0.1",
		"BOTARENA_PORT":              "9000",
		"BOTARENA_STORAGE_TYPE":      "Redis",
		"BOTARENA_REDIS_URL":         "redis://cache:6379/2",
		"BOTARENA_REDIS_PROFILE_TTL": "24h",
		"BOTARENA_ENABLE_RESET":      "true",
		"BOTARENA_STATIC_DIR":        "public",
		"BOTARENA_LOG_LEVEL":         "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StorageRedis, cfg.StorageType)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.RedisProfileTTL)
	assert.True(t, cfg.EnableReset)
	assert.Equal(t, "public", cfg.StaticDir)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestInvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number": {"BOTARENA_PORT": "http"},
		"port out of range": {"BOTARENA_PORT": "70000"},
		"unknown storage":   {"BOTARENA_STORAGE_TYPE": "postgres"},
		"bad log level":     {"BOTARENA_LOG_LEVEL": "loud"},
		"bad reset flag":    {"BOTARENA_ENABLE_RESET": "maybe"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromMap(vars)
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("BOTARENA_PORT=9191\nBOTARENA_STORAGE_TYPE=memory\n"), 0o644))
	chdir(t, dir)
	// Values already in the environment win over the file
	t.Setenv("BOTARENA_STORAGE_TYPE", "sqlite")
	t.Cleanup(func() { _ = os.Unsetenv("BOTARENA_PORT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageType)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

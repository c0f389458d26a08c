package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Player     string
	PlayerFile string
	Output     string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("BOTARENA_SERVER", "http://localhost:8080"),
		Player:     os.Getenv("BOTARENA_PLAYER"),
		PlayerFile: getEnvOrDefault("BOTARENA_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
	}
}

// LoadPlayer reads the remembered player id if none was given
func (c *Config) LoadPlayer() error {
	if c.Player != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	c.Player = strings.TrimSpace(string(data))
	return nil
}

// SavePlayer remembers the player id for later commands
func (c *Config) SavePlayer(id string) error {
	c.Player = id

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, []byte(id), 0600)
}

// RequirePlayer returns the player id or an error naming the flag to set
func (c *Config) RequirePlayer() (string, error) {
	if c.Player == "" {
		return "", errors.New("no player id: pass --player or set BOTARENA_PLAYER")
	}
	return c.Player, nil
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".botarena/player"
	}
	return filepath.Join(home, ".botarena", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Package sqlite provides a SQLite-backed profile store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id           TEXT PRIMARY KEY,
	nickname     TEXT NOT NULL,
	race         TEXT NOT NULL,
	hp           INTEGER NOT NULL,
	power        INTEGER NOT NULL,
	agility      INTEGER NOT NULL,
	protection   INTEGER NOT NULL,
	experience   INTEGER NOT NULL,
	level        INTEGER NOT NULL,
	extra_points INTEGER NOT NULL
);`

const selectProfile = `
SELECT id, nickname, race, hp, power, agility, protection, experience, level, extra_points
FROM profiles WHERE id = ?`

// Storage persists profiles in SQLite
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Open opens (or creates) the database at path and ensures the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*Storage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite database path is required")
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
		if parent := filepath.Dir(path); parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps read-modify-write transactions serialised and
	// keeps ":memory:" pointing at a single database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the SQLite handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	var p model.Profile
	var id, race string
	err := row.Scan(&id, &p.Nickname, &race,
		&p.HP, &p.Power, &p.Agility, &p.Protection,
		&p.Experience, &p.Level, &p.ExtraPoints)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}
	p.ID = model.ProfileID(id)
	p.Race = model.Race(race)
	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.ProfileID) (*model.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scanProfile(s.db.QueryRowContext(ctx, selectProfile, string(id)))
}

func (s *Storage) CreateProfile(ctx context.Context, p *model.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (
		  id, nickname, race, hp, power, agility, protection, experience, level, extra_points
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(p.ID), p.Nickname, string(p.Race),
		p.HP, p.Power, p.Agility, p.Protection,
		p.Experience, p.Level, p.ExtraPoints,
	)
	if err != nil {
		if isPrimaryKeyConflict(err) {
			return model.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (s *Storage) MutateProfile(ctx context.Context, id model.ProfileID, fn storage.MutateFunc) (*model.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := scanProfile(tx.QueryRowContext(ctx, selectProfile, string(id)))
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE profiles SET
		  hp = ?, power = ?, agility = ?, protection = ?,
		  experience = ?, level = ?, extra_points = ?
		WHERE id = ?`,
		p.HP, p.Power, p.Agility, p.Protection,
		p.Experience, p.Level, p.ExtraPoints,
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

func (s *Storage) ResetProfiles(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("reset profiles: %w", err)
	}
	return nil
}

func isPrimaryKeyConflict(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

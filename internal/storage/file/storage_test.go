package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/storage"
	"github.com/mcoot/botarena/internal/storage/storagetest"
	"github.com/mcoot/botarena/internal/testutil"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "playerProfiles.json"), testutil.NopLogger())
	require.NoError(t, err)
	return s
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStore: func(t *testing.T) storage.Store {
			return openTemp(t)
		},
	})
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("", testutil.NopLogger())
	assert.Error(t, err)
}

func TestMissingFileStartsEmpty(t *testing.T) {
	s := openTemp(t)

	_, err := s.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
	assert.NoFileExists(t, s.Path())
}

func TestEveryMutationRewritesFile(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	p := model.NewProfile("u1", "Alice", model.RaceHuman, model.Allocation{HP: 5})
	require.NoError(t, s.CreateProfile(ctx, p))
	assert.Equal(t, p, readFile(t, s.Path())["u1"])

	updated, err := s.MutateProfile(ctx, "u1", func(p *model.Profile) error {
		p.Experience = 7
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, updated, readFile(t, s.Path())["u1"])
}

func TestFileIsPrettyPrintedObjectKeyedByID(t *testing.T) {
	s := openTemp(t)

	p := model.NewProfile("u1", "Alice", model.RaceHuman, model.Allocation{HP: 5})
	require.NoError(t, s.CreateProfile(context.Background(), p))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "{\n  \"u1\": {\n    \"id\": \"u1\",")
	assert.Contains(t, string(data), `"extraPoints": 5`)
}

func TestProfilesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playerProfiles.json")
	ctx := context.Background()

	s, err := Open(path, testutil.NopLogger())
	require.NoError(t, err)
	p := model.NewProfile("u1", "Alice", model.RaceElf, model.Allocation{Agility: 5})
	require.NoError(t, s.CreateProfile(ctx, p))

	reopened, err := Open(path, testutil.NopLogger())
	require.NoError(t, err)

	got, err := reopened.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestResetWritesEmptyObject(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	p := model.NewProfile("u1", "Alice", model.RaceHuman, model.Allocation{HP: 5})
	require.NoError(t, s.CreateProfile(ctx, p))
	require.NoError(t, s.ResetProfiles(ctx))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playerProfiles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path, testutil.NopLogger())
	require.NoError(t, err)

	_, err = s.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestRecordsWithoutIDTakeTheirKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playerProfiles.json")
	legacy := `{"u9": {"nickname": "Old", "race": "dwarf", "hp": 20, "power": 2,
		"agility": 2, "protection": 4, "experience": 3, "level": 1, "extraPoints": 0}}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s, err := Open(path, testutil.NopLogger())
	require.NoError(t, err)

	got, err := s.GetProfile(context.Background(), "u9")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileID("u9"), got.ID)
	assert.Equal(t, 3, got.Experience)
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "playerProfiles.json")
	s, err := Open(path, testutil.NopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	p := model.NewProfile("u1", "Alice", model.RaceHuman, model.Allocation{HP: 5})
	require.NoError(t, s.CreateProfile(ctx, p))

	// The in-memory state still serves the profile
	got, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.NoFileExists(t, path)
}

func readFile(t *testing.T, path string) map[model.ProfileID]*model.Profile {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	profiles := make(map[model.ProfileID]*model.Profile)
	require.NoError(t, json.Unmarshal(data, &profiles))
	return profiles
}

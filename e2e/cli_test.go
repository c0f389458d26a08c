package e2e_test

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func buildBinary(t *testing.T, pkg, name string) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binaryPath, pkg)
	cmd.Dir = findProjectRoot(t)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build %s: %s", pkg, string(output))
	return binaryPath
}

func freePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

// startServer runs the server binary on file storage in a temp dir
func startServer(t *testing.T) string {
	t.Helper()

	binary := buildBinary(t, "./cmd/server", "botarena-server")
	port := freePort(t)
	dir := t.TempDir()

	cmd := exec.Command(binary)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"BOTARENA_HOST=127.0.0.1",
		fmt.Sprintf("BOTARENA_PORT=%d", port),
		"BOTARENA_STORAGE_TYPE=file",
		"BOTARENA_DATA_FILE="+filepath.Join(dir, "playerProfiles.json"),
		"BOTARENA_ENABLE_RESET=true",
		"BOTARENA_LOG_LEVEL=error",
	)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Start())

	t.Cleanup(func() {
		_ = cmd.Process.Signal(os.Interrupt)
		done := make(chan struct{})
		go func() {
			_ = cmd.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			_ = cmd.Process.Kill()
		}
	})

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServer(t, serverURL+"/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(10 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	playerFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	return &cliRunner{
		binaryPath: buildBinary(t, "./cmd/botarena", "botarena"),
		serverURL:  serverURL,
		playerFile: filepath.Join(t.TempDir(), "player"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player-file", r.playerFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "BOTARENA_PLAYER=")
	output, err := cmd.Output()
	return string(output), err
}

type profile struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	Race        string `json:"race"`
	HP          int    `json:"hp"`
	Power       int    `json:"power"`
	Agility     int    `json:"agility"`
	Protection  int    `json:"protection"`
	Experience  int    `json:"experience"`
	Level       int    `json:"level"`
	ExtraPoints int    `json:"extraPoints"`
}

type profileResponse struct {
	Message string  `json:"message"`
	Profile profile `json:"profile"`
}

type lookupResponse struct {
	Exists  bool     `json:"exists"`
	Profile *profile `json:"profile"`
}

type fightResponse struct {
	Log         []string `json:"log"`
	Player      profile  `json:"player"`
	FightResult *string  `json:"fightResult"`
	Bot         struct {
		Nickname string `json:"nickname"`
		HP       int    `json:"hp"`
	} `json:"bot"`
}

func TestCLI_HealthCheck(t *testing.T) {
	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)
	assert.JSONEq(t, `{"status":"ok"}`, output)
}

func TestCLI_ProfileAndFight(t *testing.T) {
	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	output, err := cli.run("--player", "424242", "profile", "create",
		"--nickname", "Grom", "--race", "orc",
		"--hp", "1", "--power", "1", "--agility", "1", "--protection", "2")
	require.NoError(t, err, "output: %s", output)

	var created profileResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "Profile created.", created.Message)
	assert.Equal(t, profile{
		ID: "424242", Nickname: "Grom", Race: "orc",
		HP: 21, Power: 5, Agility: 3, Protection: 4,
		Experience: 0, Level: 1, ExtraPoints: 5,
	}, created.Profile)

	// Duplicate creation fails with a non-zero exit
	_, err = cli.run("--player", "424242", "profile", "create",
		"--nickname", "Grom", "--race", "orc", "--hp", "5")
	assert.Error(t, err)

	// Remembered id drives the remaining commands
	output, err = cli.run("spend", "--power", "2")
	require.NoError(t, err, "output: %s", output)
	var spent profileResponse
	require.NoError(t, json.Unmarshal([]byte(output), &spent))
	assert.Equal(t, 7, spent.Profile.Power)
	assert.Equal(t, 3, spent.Profile.ExtraPoints)

	output, err = cli.run("fight", "--hit", "head", "--defend", "chest")
	require.NoError(t, err, "output: %s", output)
	var fight fightResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fight))
	assert.Equal(t, "Bot", fight.Bot.Nickname)
	assert.LessOrEqual(t, fight.Bot.HP, 20)
	assert.LessOrEqual(t, fight.Player.HP, 21)
	assert.Nil(t, fight.FightResult)
	assert.NotEmpty(t, fight.Log)

	// Damage persists on the stored profile
	output, err = cli.run("profile", "get")
	require.NoError(t, err, "output: %s", output)
	var lookup lookupResponse
	require.NoError(t, json.Unmarshal([]byte(output), &lookup))
	require.True(t, lookup.Exists)
	assert.Equal(t, fight.Player.HP, lookup.Profile.HP)
}

func TestCLI_Reset(t *testing.T) {
	serverURL := startServer(t)
	cli := newCLIRunner(t, serverURL)

	output, err := cli.run("--player", "u1", "profile", "create",
		"--nickname", "Elwen", "--race", "elf", "--agility", "5")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("reset")
	require.NoError(t, err, "output: %s", output)
	assert.JSONEq(t, `{"message":"Profiles reset."}`, output)

	output, err = cli.run("profile", "get", "u1")
	require.NoError(t, err, "output: %s", output)
	assert.JSONEq(t, `{"exists":false}`, output)
}

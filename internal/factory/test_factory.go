package factory

import (
	"github.com/mcoot/botarena/internal/dependencies/mocks"
	"github.com/mcoot/botarena/internal/storage/memory"
	"github.com/mcoot/botarena/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App on in-memory storage with queued randomness
func NewTestApp() *TestApp {
	store := memory.New()
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// QueueFight queues the draws for one fight round: the bot's attack and
// defend part indices, then the exchange rolls that will be consumed
func (t *TestApp) QueueFight(botAttack, botDefend int, rolls ...int) {
	t.MockRandom.QueueIntn(botAttack, botDefend)
	t.MockRandom.QueueIntn(rolls...)
}

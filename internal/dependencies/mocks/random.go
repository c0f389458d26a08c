package mocks

import (
	"github.com/mcoot/botarena/internal/dependencies/random"
)

// MockRandom replays queued draws in order. Once the queue is empty every
// draw returns 0.
type MockRandom struct {
	queue []int

	// IntnCalls records the bound passed to each draw
	IntnCalls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with optional initial draws
func NewMockRandom(draws ...int) *MockRandom {
	return &MockRandom{queue: draws}
}

// Intn pops the next queued draw
func (m *MockRandom) Intn(n int) int {
	m.IntnCalls = append(m.IntnCalls, n)
	if len(m.queue) == 0 {
		return 0
	}
	v := m.queue[0]
	m.queue = m.queue[1:]
	return v
}

// QueueIntn appends draws to the queue
func (m *MockRandom) QueueIntn(draws ...int) {
	m.queue = append(m.queue, draws...)
}

// Remaining is the number of queued draws not yet consumed
func (m *MockRandom) Remaining() int {
	return len(m.queue)
}

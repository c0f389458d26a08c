package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixed int

func (f fixed) Intn(n int) int { return int(f) % n }

func TestCryptoIntnStaysInRange(t *testing.T) {
	r := New()
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestCryptoIntnNonPositive(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestPercentRoll(t *testing.T) {
	assert.Equal(t, 42, PercentRoll(fixed(42)))
	assert.Equal(t, 99, PercentRoll(fixed(199)))

	for i := 0; i < 200; i++ {
		v := PercentRoll(New())
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, PercentSides)
	}
}

func TestPick(t *testing.T) {
	items := []string{"head", "chest", "stomach", "legs"}
	assert.Equal(t, "stomach", Pick(fixed(2), items))
	assert.Equal(t, "head", Pick(fixed(4), items))
}

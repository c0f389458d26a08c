package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PercentSides is the size of a percentile roll
const PercentSides = 100

// Random is the source of every draw the arena makes. Tests swap in a queue
// of fixed results.
type Random interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// PercentRoll draws a percentile roll in [0, 100). A chance of c percent
// succeeds when the roll is below c.
func PercentRoll(r Random) int {
	return r.Intn(PercentSides)
}

// Pick draws one element of items uniformly
func Pick[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}

// Crypto draws from crypto/rand
type Crypto struct{}

// New returns the production source
func New() Crypto {
	return Crypto{}
}

// Intn returns 0 for a non-positive n
func (Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

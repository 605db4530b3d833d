package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness the strategies draw from. *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests substitute fixed sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. A zero seed is replaced by the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

package core

import (
	"math/rand"
	"time"
)

// Rand is the random source the simulation draws from.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Package rng isolates randomized selection behind a seedable source.
package rng

import (
	"math/rand"
	"time"
)

// Rand is the random source used for enemy, word, path, and ally selection.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// New returns a source seeded with the given seed, or with the current time
// when seed is zero.
func New(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

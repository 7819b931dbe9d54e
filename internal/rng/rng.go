// Package rng provides the single random source of a battle.
// Every random draw of a battle (damage roll, accuracy, status chances,
// multi-hit counts, AI noise) goes through one Source so that a fixed
// seed replays the whole battle.
package rng

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source is a deterministic random source. Not safe for concurrent use:
// a battle is resolved on a single goroutine.
type Source struct {
	r     *rand.Rand
	draws uint64
}

// New creates a Source from a numeric seed.
func New(seed uint64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &Source{r: rand.New(rand.NewChaCha8(key))}
}

// NewFromKey derives a 32-byte ChaCha8 seed from an arbitrary key
// (battle id, replay name) with BLAKE2b-256.
func NewFromKey(key string) *Source {
	return &Source{r: rand.New(rand.NewChaCha8(blake2b.Sum256([]byte(key))))}
}

// IntN returns a value in [0, n). Returns 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.draws++
	return s.r.IntN(n)
}

// IntRange returns a value in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.draws++
	return s.r.Float64()
}

// Chance reports whether a percent roll succeeds. 100 and above always succeeds.
func (s *Source) Chance(percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return s.IntN(100) < percent
}

// Weighted picks an index from weights. Returns -1 if all weights are zero.
func (s *Source) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := s.IntN(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// Draws returns how many values were drawn so far.
// Used by tests to assert that read-only paths never consume randomness.
func (s *Source) Draws() uint64 {
	return s.draws
}

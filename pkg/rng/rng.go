// Package rng supplies the random source the progression engine draws from.
//
// The engine never touches the global math/rand state. Callers inject a
// Source so gameplay rolls stay reproducible under a pinned seed and
// scriptable in tests.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source yields the random draws the game consumes.
type Source interface {
	// Float64 returns a draw in [0.0, 1.0).
	Float64() float64
	// Intn returns a draw in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// New returns a Source seeded with the given seed. A zero seed draws a
// high-entropy seed from crypto/rand.
func New(seed int64) (Source, error) {
	if seed == 0 {
		generated, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = generated
	}
	return &locked{rnd: rand.New(rand.NewSource(seed))}, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// locked guards one math/rand generator with a mutex so a single source
// can serve concurrent webhook requests.
type locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

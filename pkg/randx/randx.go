// Package randx provides a goroutine-safe, seedable random source. The
// simulator's delay draws, fault injection and reply decisions all go
// through it so tests can pin a seed and get reproducible runs.
package randx

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of math/rand the simulator draws from.
type Source interface {
	Float64() float64
	Int63n(n int64) int64
}

// Locked wraps a seeded *rand.Rand behind a mutex. math/rand.Rand is not
// safe for concurrent use and every in-flight timer chain draws from the
// same source.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Locked source. A zero seed means "seed from the clock".
func New(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{rnd: rand.New(rand.NewSource(seed))}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *Locked) Int63n(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Int63n(n)
}

package generator

import (
	"math/rand"
	"sync"
)

// Source supplies the random indices used by the shuffle.
// Intn must return a uniformly distributed value in [0, n).
type Source interface {
	Intn(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int {
	return f(n)
}

// globalSource draws from the process-wide math/rand generator,
// which is already safe for concurrent use.
//
//nolint:gosec // G404: team assignment has no security requirement
var globalSource Source = SourceFunc(rand.Intn)

// lockedSource serializes access to a seeded *rand.Rand.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a reproducible Source that is safe for concurrent use.
func NewSeededSource(seed int64) Source {
	//nolint:gosec // G404: reproducible shuffles need a deterministic generator
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Package random provides the injectable uniform random source used to pick
// statuses and confidence values, plus the two sampling helpers built on it.
package random

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Sequence replays fixed values in order and wraps around when exhausted.
// Values are clamped into [0, 1). An empty Sequence always yields 0.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequence creates a deterministic source.
func NewSequence(values ...float64) *Sequence {
	owned := make([]float64, len(values))
	copy(owned, values)
	return &Sequence{values: owned}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return clampUnit(v)
}

// Draws returns how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	default:
		return v
	}
}

// Index picks a uniform index in [0, n): floor(u*n). n must be positive.
func Index(src Source, n int) int {
	i := int(math.Floor(src.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// IntRange picks a uniform integer in [lo, hi]: floor(u*(hi-lo+1)) + lo.
func IntRange(src Source, lo, hi int) int {
	span := hi - lo + 1
	return Index(src, span) + lo
}

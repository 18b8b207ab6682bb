// Package entropy isolates every stochastic input behind an injectable
// source, so economic formulas stay deterministic and unit-testable.
// The production path seeds from the game seed; tests pin a Fixed source.
package entropy

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source supplies the randomness consumed by the simulation: phase
// durations, demand fluctuation, inflation noise.
type Source interface {
	// Float returns a uniform float64 in [0, 1).
	Float() float64
	// Range returns a uniform float64 in [lo, hi).
	Range(lo, hi float64) float64
	// IntBetween returns a uniform int in [lo, hi] inclusive.
	IntBetween(lo, hi int) int
}

// Seeded is the production source: a plain seeded PRNG.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic source from a seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Float() float64 {
	return s.rng.Float64()
}

func (s *Seeded) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Seeded) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Fixed always returns the same fraction. Tests use it to pin formulas to
// exact values instead of asserting bounds.
type Fixed struct {
	// Value is the fraction returned by Float, in [0, 1).
	Value float64
}

func (f Fixed) Float() float64 {
	return f.Value
}

func (f Fixed) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + f.Value*(hi-lo)
}

func (f Fixed) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(f.Value*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// NoiseStream produces a smoothly varying value per tick instead of
// independent draws. Quarterly market fluctuation uses it so consecutive
// quarters wander rather than jump.
type NoiseStream struct {
	noise   opensimplex.Noise
	channel float64
}

// NewNoiseStream creates a smooth stream. Distinct channels stay
// uncorrelated even when built from the same seed.
func NewNoiseStream(seed int64, channel int) *NoiseStream {
	return &NoiseStream{
		noise:   opensimplex.NewNormalized(seed),
		channel: float64(channel) * 137.5,
	}
}

// At returns the stream value for a tick, in [0, 1].
func (n *NoiseStream) At(tick uint64) float64 {
	return n.noise.Eval2(float64(tick)*0.35, n.channel)
}

// RangeAt maps the stream value for a tick into [lo, hi].
func (n *NoiseStream) RangeAt(tick uint64, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + n.At(tick)*(hi-lo)
}

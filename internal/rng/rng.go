// Package rng provides the seedable pseudo-random source used by the
// procedural layers.
//
// The generator is a 32-bit linear congruential generator with the
// Numerical Recipes constants. Its output is a pure function of the seed,
// so two streams built from the same seed yield the same sequence on every
// platform.
package rng

const (
	multiplier = 1664525
	increment  = 1013904223

	mantissaMask = 0x00FFFFFF
	mantissaDiv  = 0x01000000
)

// Stream is a deterministic sequence of uniform values in [0, 1).
// A Stream is not safe for concurrent use; each layer constructs its own.
type Stream struct {
	state uint32
}

// New creates a stream from seed. A zero seed is coerced to 1 because a
// zero state would otherwise only be escaped through the increment, and
// callers treat 0 and 1 as the same seed.
func New(seed int32) *Stream {
	s := uint32(seed)
	if s == 0 {
		s = 1
	}
	return &Stream{state: s}
}

// Next advances the stream and returns the next value in [0, 1).
func (s *Stream) Next() float64 {
	s.state = multiplier*s.state + increment
	return float64(s.state&mantissaMask) / mantissaDiv
}

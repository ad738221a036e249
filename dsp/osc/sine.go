// Package osc provides phase-accumulating oscillator nodes.
package osc

import (
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// Sine is a sine oscillator whose frequency is supplied per sample.
//
// Phase is accumulated in cycles in double precision and never wrapped.
// Reset starts the phase at a value derived from the hash, so copies of the
// oscillator with different hashes are decorrelated.
//   - Input 0: frequency (Hz)
//   - Output 0: sine wave
type Sine[T core.Float] struct {
	phase          float64
	sampleDuration float64
	hash           uint32
}

// NewSine returns an oscillator bound to the default sample rate with zero
// initial phase. Call Reset to bind a sample rate and seed the phase.
func NewSine[T core.Float]() *Sine[T] {
	return &Sine[T]{sampleDuration: 1 / core.DefaultSampleRate}
}

// ProcessSample advances the phase by one sample at frequency Hz and
// returns the output.
func (s *Sine[T]) ProcessSample(frequency T) T {
	s.phase += float64(frequency) * s.sampleDuration
	return T(math.Sin(s.phase * 2 * math.Pi))
}

// Tick implements [node.Node].
func (s *Sine[T]) Tick(in, out []T) {
	out[0] = s.ProcessSample(in[0])
}

// Inputs implements [node.Node].
func (s *Sine[T]) Inputs() int { return 1 }

// Outputs implements [node.Node].
func (s *Sine[T]) Outputs() int { return 1 }

// Reset sets the phase from the hash. A positive sampleRate rebinds the
// sample duration.
func (s *Sine[T]) Reset(sampleRate float64) {
	s.phase = InitialPhase(s.hash)
	if sampleRate > 0 {
		s.sampleDuration = 1 / sampleRate
	}
}

// SetHash records the seed for the next Reset.
func (s *Sine[T]) SetHash(hash uint32) {
	s.hash = hash
}

// Phase returns the accumulated phase in cycles.
func (s *Sine[T]) Phase() float64 {
	return s.phase
}

// InitialPhase returns the starting phase in cycles, in [0, 1), that Reset
// derives from hash.
func InitialPhase(hash uint32) float64 {
	return core.Hash01(uint64(hash))
}

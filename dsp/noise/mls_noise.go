package noise

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
)

// MLSNoise emits an MLS as a bipolar signal with values -1 and +1.
//   - Output 0: noise
type MLSNoise[T core.Float] struct {
	mls  MLS
	hash uint32
}

// NewMLSNoise returns a noise node that starts from mls. Reset reseeds the
// generator from the hash, keeping the width of mls.
func NewMLSNoise[T core.Float](mls MLS) *MLSNoise[T] {
	return &MLSNoise[T]{mls: mls}
}

// ProcessSample returns the next noise sample.
func (m *MLSNoise[T]) ProcessSample() T {
	value := T(m.mls.Value())
	m.mls = m.mls.Next()
	return value*2 - 1
}

// Tick implements [node.Node].
func (m *MLSNoise[T]) Tick(_, out []T) {
	out[0] = m.ProcessSample()
}

// Inputs implements [node.Node].
func (m *MLSNoise[T]) Inputs() int { return 0 }

// Outputs implements [node.Node].
func (m *MLSNoise[T]) Outputs() int { return 1 }

// Reset restarts the sequence from a state derived from the hash. The
// sample rate is ignored.
func (m *MLSNoise[T]) Reset(float64) {
	m.mls = NewMLSWithSeed(m.mls.n, m.hash)
}

// SetHash records the seed for the next Reset.
func (m *MLSNoise[T]) SetHash(hash uint32) {
	m.hash = hash
}

// MLS returns the current generator state.
func (m *MLSNoise[T]) MLS() MLS {
	return m.mls
}

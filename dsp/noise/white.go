package noise

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
)

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// White is a white noise node driven by a 64-bit linear congruential
// generator. The 20 most significant bits of each state are mapped to a
// sample in [-1, 1).
//   - Output 0: noise
type White[T core.Float] struct {
	x    uint64
	hash uint32
}

// NewWhite returns a white noise node seeded with hash 0.
func NewWhite[T core.Float]() *White[T] {
	return &White[T]{}
}

// ProcessSample advances the generator and returns the next sample.
func (w *White[T]) ProcessSample() T {
	w.x = w.x*lcgMultiplier + lcgIncrement
	return T(w.x>>44)/(1<<19) - 1
}

// Tick implements [node.Node].
func (w *White[T]) Tick(_, out []T) {
	out[0] = w.ProcessSample()
}

// Inputs implements [node.Node].
func (w *White[T]) Inputs() int { return 0 }

// Outputs implements [node.Node].
func (w *White[T]) Outputs() int { return 1 }

// Reset reseeds the generator with the hash. The sample rate is ignored.
func (w *White[T]) Reset(float64) {
	w.x = uint64(w.hash)
}

// SetHash records the seed for the next Reset.
func (w *White[T]) SetHash(hash uint32) {
	w.hash = hash
}

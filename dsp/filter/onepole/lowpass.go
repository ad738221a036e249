package onepole

import (
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// Lowpass is a one-pole lowpass filter.
//
//	value = (1-coeff)*x + coeff*value,  coeff = exp(-2*pi*cutoff/sampleRate)
//
//   - Input 0: signal
//   - Input 1: cutoff frequency (Hz)
//   - Output 0: filtered signal
type Lowpass[T, F core.Float] struct {
	node.Unhashed

	value      F
	coeff      F
	cutoff     F
	sampleRate F
}

// NewLowpass returns a one-pole lowpass bound to sampleRate.
func NewLowpass[T, F core.Float](sampleRate float64) *Lowpass[T, F] {
	return &Lowpass[T, F]{sampleRate: F(sampleRate)}
}

// ProcessSample filters x. The coefficient is recomputed only when cutoff
// differs from the previous value.
func (l *Lowpass[T, F]) ProcessSample(x, cutoff T) T {
	if fc := F(cutoff); fc != l.cutoff {
		l.cutoff = fc
		l.coeff = core.Exp(F(-2*math.Pi) * fc / l.sampleRate)
	}

	l.value = (1-l.coeff)*F(x) + l.coeff*l.value
	return T(l.value)
}

// Tick implements [node.Node].
func (l *Lowpass[T, F]) Tick(in, out []T) {
	out[0] = l.ProcessSample(in[0], in[1])
}

// Inputs implements [node.Node].
func (l *Lowpass[T, F]) Inputs() int { return 2 }

// Outputs implements [node.Node].
func (l *Lowpass[T, F]) Outputs() int { return 1 }

// Reset clears the filter state. A positive sampleRate rebinds the sample
// rate and drops the cached cutoff so the coefficient is recomputed.
func (l *Lowpass[T, F]) Reset(sampleRate float64) {
	if sampleRate > 0 {
		l.sampleRate = F(sampleRate)
		l.cutoff = 0
		l.coeff = 0
	}

	l.value = 0
}

// Coeff returns the current feedback coefficient.
func (l *Lowpass[T, F]) Coeff() F {
	return l.coeff
}

// Response implements [node.Responder] for the last cutoff seen.
func (l *Lowpass[T, F]) Response(omega float64) complex128 {
	return firstOrderResponse(omega, 1-float64(l.coeff), 0, -float64(l.coeff))
}

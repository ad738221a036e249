package biquad

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// ButterLowpass is a 2-pole Butterworth lowpass with the cutoff supplied
// per sample.
//   - Input 0: signal
//   - Input 1: cutoff frequency (Hz)
//   - Output 0: filtered signal
type ButterLowpass[T, F core.Float] struct {
	node.Unhashed

	biquad     Biquad[T, F]
	sampleRate F
	cutoff     F
}

// NewButterLowpass returns a lowpass bound to sampleRate.
func NewButterLowpass[T, F core.Float](sampleRate float64) *ButterLowpass[T, F] {
	return &ButterLowpass[T, F]{sampleRate: F(sampleRate)}
}

// ProcessSample filters x with the given cutoff. Coefficients are redesigned
// only when cutoff differs from the previous value.
func (l *ButterLowpass[T, F]) ProcessSample(x, cutoff T) T {
	if fc := F(cutoff); fc != l.cutoff {
		l.biquad.SetCoefficients(ButterLowpassCoefficients(l.sampleRate, fc))
		l.cutoff = fc
	}

	return l.biquad.ProcessSample(x)
}

// Tick implements [node.Node].
func (l *ButterLowpass[T, F]) Tick(in, out []T) {
	out[0] = l.ProcessSample(in[0], in[1])
}

// Inputs implements [node.Node].
func (l *ButterLowpass[T, F]) Inputs() int { return 2 }

// Outputs implements [node.Node].
func (l *ButterLowpass[T, F]) Outputs() int { return 1 }

// Reset clears the filter state and the cached cutoff. A positive
// sampleRate rebinds the design sample rate.
func (l *ButterLowpass[T, F]) Reset(sampleRate float64) {
	if sampleRate > 0 {
		l.sampleRate = F(sampleRate)
	}

	l.biquad.Reset(sampleRate)
	l.biquad.SetCoefficients(Coefficients[F]{})
	l.cutoff = 0
}

// Coefficients returns the coefficients in use.
func (l *ButterLowpass[T, F]) Coefficients() Coefficients[F] {
	return l.biquad.Coefficients()
}

// Response implements [node.Responder] for the last cutoff seen.
func (l *ButterLowpass[T, F]) Response(omega float64) complex128 {
	return l.biquad.Response(omega)
}

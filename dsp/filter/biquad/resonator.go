package biquad

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// Resonator is a bandpass resonator with center and bandwidth supplied per
// sample.
//   - Input 0: signal
//   - Input 1: center frequency (Hz)
//   - Input 2: bandwidth between the -3 dB points (Hz)
//   - Output 0: filtered signal
type Resonator[T, F core.Float] struct {
	node.Unhashed

	biquad     Biquad[T, F]
	sampleRate F
	center     F
	bandwidth  F
}

// NewResonator returns a resonator bound to sampleRate.
func NewResonator[T, F core.Float](sampleRate float64) *Resonator[T, F] {
	return &Resonator[T, F]{sampleRate: F(sampleRate)}
}

// ProcessSample filters x. Coefficients are redesigned only when center or
// bandwidth differ from the previous values.
func (r *Resonator[T, F]) ProcessSample(x, center, bandwidth T) T {
	fc, bw := F(center), F(bandwidth)
	if fc != r.center || bw != r.bandwidth {
		r.biquad.SetCoefficients(ResonatorCoefficients(r.sampleRate, fc, bw))
		r.center = fc
		r.bandwidth = bw
	}

	return r.biquad.ProcessSample(x)
}

// Tick implements [node.Node].
func (r *Resonator[T, F]) Tick(in, out []T) {
	out[0] = r.ProcessSample(in[0], in[1], in[2])
}

// Inputs implements [node.Node].
func (r *Resonator[T, F]) Inputs() int { return 3 }

// Outputs implements [node.Node].
func (r *Resonator[T, F]) Outputs() int { return 1 }

// Reset clears the filter state and the cached controls. A positive
// sampleRate rebinds the design sample rate.
func (r *Resonator[T, F]) Reset(sampleRate float64) {
	if sampleRate > 0 {
		r.sampleRate = F(sampleRate)
	}

	r.biquad.Reset(sampleRate)
	r.biquad.SetCoefficients(Coefficients[F]{})
	r.center = 0
	r.bandwidth = 0
}

// Coefficients returns the coefficients in use.
func (r *Resonator[T, F]) Coefficients() Coefficients[F] {
	return r.biquad.Coefficients()
}

// Response implements [node.Responder] for the last controls seen.
func (r *Resonator[T, F]) Response(omega float64) complex128 {
	return r.biquad.Response(omega)
}

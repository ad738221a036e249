package biquad

import (
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
type Coefficients[F core.Float] struct {
	B0, B1, B2 F // feedforward (numerator)
	A1, A2     F // feedback (denominator)
}

// ButterLowpassCoefficients returns a 2-pole Butterworth lowpass obtained by
// the bilinear transform. cutoff is the -3 dB point in Hz and must lie below
// sampleRate/2.
func ButterLowpassCoefficients[F core.Float](sampleRate, cutoff F) Coefficients[F] {
	sqrt2 := F(math.Sqrt2)
	f := core.Tan(cutoff * F(math.Pi) / sampleRate)
	a0r := 1 / (1 + sqrt2*f + f*f)
	b0 := f * f * a0r

	return Coefficients[F]{
		B0: b0,
		B1: 2 * b0,
		B2: b0,
		A1: (2*f*f - 2) * a0r,
		A2: (1 - sqrt2*f + f*f) * a0r,
	}
}

// ResonatorCoefficients returns a bandpass resonator peaking at center Hz.
// bandwidth is the distance in Hz between the -3 dB points.
func ResonatorCoefficients[F core.Float](sampleRate, center, bandwidth F) Coefficients[F] {
	r := core.Exp(F(-math.Pi) * bandwidth / sampleRate)
	b0 := core.Sqrt(1-r*r) * 0.5

	return Coefficients[F]{
		B0: b0,
		B1: 0,
		B2: -b0,
		A1: -2 * r * core.Cos(F(2*math.Pi)*center/sampleRate),
		A2: r * r,
	}
}

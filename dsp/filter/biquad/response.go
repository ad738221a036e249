package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// Response evaluates H(z) at z = exp(i*2*pi*omega). omega is the frequency
// normalized to the sample rate: 0 is DC and 0.5 is Nyquist.
func (c Coefficients[F]) Response(omega float64) complex128 {
	e1 := cmplx.Rect(1, -2*math.Pi*omega)
	e2 := cmplx.Rect(1, -4*math.Pi*omega)

	num := re(c.B0) + re(c.B1)*e1 + re(c.B2)*e2
	den := 1 + re(c.A1)*e1 + re(c.A2)*e2
	return num / den
}

// ResponseAt computes the complex frequency response at freqHz for the given
// sample rate.
func (c Coefficients[F]) ResponseAt(freqHz, sampleRate float64) complex128 {
	return c.Response(freqHz / sampleRate)
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.ResponseAt(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (c Coefficients[F]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.ResponseAt(freqHz, sampleRate))
}

func re[F core.Float](x F) complex128 {
	return complex(float64(x), 0)
}

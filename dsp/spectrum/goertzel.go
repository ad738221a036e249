package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Goertzel evaluates a single DFT term of a sample stream.
//
// The analyzer accumulates every sample processed since the last Reset.
// Power and Magnitude equal |X(f)|^2 and |X(f)| of a DFT over the same
// block. For leakage-free results the block should span a whole number of
// periods of the target frequency.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	w          float64
	coeff      float64
	s0, s1     float64
	n          int
}

// NewGoertzel creates a Goertzel analyzer for the target frequency, which
// must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	w := 2 * math.Pi * frequency / sampleRate
	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		w:          w,
		coeff:      2 * math.Cos(w),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.n = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.n++
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	for _, x := range input {
		g.ProcessSample(x)
	}
}

// Bin returns the complex DFT term sum x[n]*exp(-i*w*n) over the samples
// processed so far.
func (g *Goertzel) Bin() complex128 {
	if g.n == 0 {
		return 0
	}
	// The recurrence yields X*exp(i*w*(n-1)); rotate back to n = 0.
	y := complex(g.s0, 0) - cmplx.Rect(1, -g.w)*complex(g.s1, 0)
	return y * cmplx.Rect(1, -g.w*float64(g.n-1))
}

// Power returns the squared magnitude of the frequency component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

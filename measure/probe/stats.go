package probe

import (
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// Stats holds time-domain statistics of a rendered node output.
type Stats struct {
	Length        int
	DC            float64
	RMS           float64
	RMSdB         float64
	Peak          float64
	PeakdB        float64
	CrestFactor   float64
	ZeroCrossings int
	Variance      float64
	Skewness      float64
	// Kurtosis is the excess kurtosis: 0 for a Gaussian, -1.2 for uniform
	// noise and -2 for a symmetric binary sequence.
	Kurtosis float64
}

// Accumulator collects Stats one sample at a time so it can sit behind a
// node's output without buffering. Moments use Welford's update.
type Accumulator[T core.Float] struct {
	n             int
	mean          float64
	m2, m3, m4    float64
	sumSq         float64
	peak          float64
	last          float64
	zeroCrossings int
}

// Add feeds one sample.
func (a *Accumulator[T]) Add(sample T) {
	x := float64(sample)

	a.n++
	ni := float64(a.n)

	delta := x - a.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * (ni - 1)

	// M4 must be updated before M3, and M3 before M2.
	a.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
	a.m3 += term1*deltaN*(ni-2) - 3*deltaN*a.m2
	a.m2 += term1
	a.mean += deltaN

	a.sumSq += x * x
	a.peak = math.Max(a.peak, math.Abs(x))

	if a.n > 1 && a.last*x < 0 {
		a.zeroCrossings++
	}

	a.last = x
}

// AddBlock feeds every sample of block.
func (a *Accumulator[T]) AddBlock(block []T) {
	for _, x := range block {
		a.Add(x)
	}
}

// Reset discards all samples.
func (a *Accumulator[T]) Reset() {
	*a = Accumulator[T]{}
}

// Result returns the statistics of the samples added so far.
func (a *Accumulator[T]) Result() Stats {
	if a.n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)

	var crest float64
	if rms > 0 {
		crest = a.peak / rms
	}

	variance := a.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (a.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (a.m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:        a.n,
		DC:            a.mean,
		RMS:           rms,
		RMSdB:         core.LinearToDB(rms),
		Peak:          a.peak,
		PeakdB:        core.LinearToDB(a.peak),
		CrestFactor:   crest,
		ZeroCrossings: a.zeroCrossings,
		Variance:      variance,
		Skewness:      skewness,
		Kurtosis:      kurtosis,
	}
}

// SignalStats returns the statistics of signal.
func SignalStats[T core.Float](signal []T) Stats {
	var a Accumulator[T]
	a.AddBlock(signal)
	return a.Result()
}

package probe

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
	"github.com/cwbudde/algo-nodes/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

var (
	errSegments = errors.New("probe: need at least one full segment")
	errBinRange = errors.New("probe: invalid bin range")
)

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// AveragedSpectrum splits signal into non-overlapping Hann-windowed
// segments of size samples and returns the mean one-sided power spectrum
// (Welch's method without overlap). Trailing samples that do not fill a
// segment are ignored.
func AveragedSpectrum(signal []float64, size int) ([]float64, error) {
	analyzer, err := spectrum.NewAnalyzer(size)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}

	segments := len(signal) / size
	if segments == 0 {
		return nil, fmt.Errorf("%w: %d samples, segment %d", errSegments, len(signal), size)
	}

	win := hann(size)
	frame := make([]float64, size)
	acc := make([]float64, size/2+1)

	for s := range segments {
		copy(frame, signal[s*size:(s+1)*size])
		vecmath.MulBlockInPlace(frame, win)

		ps, err := analyzer.PowerSpectrum(frame)
		if err != nil {
			return nil, fmt.Errorf("probe: %w", err)
		}

		for k, p := range ps {
			acc[k] += p
		}
	}

	inv := 1 / float64(segments)
	for k := range acc {
		acc[k] *= inv
	}

	return acc, nil
}

// NodeSpectrum resets n, renders segments*size frames of its first output
// with inputs from fn and returns their averaged spectrum.
func NodeSpectrum[T core.Float](n node.Node[T], fn node.InputFunc[T], sampleRate float64, size, segments int) ([]float64, error) {
	if n.Outputs() < 1 {
		return nil, errNoOutput
	}

	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", errSegments, segments)
	}

	n.Reset(sampleRate)

	outputs, err := node.RenderFunc(n, fn, size*segments)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}

	signal := make([]float64, len(outputs[0]))
	for i, v := range outputs[0] {
		signal[i] = float64(v)
	}

	return AveragedSpectrum(signal, size)
}

// SpectralFlatness returns the ratio of geometric to arithmetic mean of
// ps[lo:hi]. It is 1 for a perfectly flat spectrum and tends to 0 for a
// tonal or steeply sloped one. A zero bin gives 0.
func SpectralFlatness(ps []float64, lo, hi int) (float64, error) {
	if lo < 0 || hi > len(ps) || lo >= hi {
		return 0, fmt.Errorf("%w: [%d, %d) of %d", errBinRange, lo, hi, len(ps))
	}

	var logSum, sum float64

	for _, p := range ps[lo:hi] {
		if p <= 0 {
			return 0, nil
		}

		logSum += math.Log(p)
		sum += p
	}

	count := float64(hi - lo)
	return math.Exp(logSum/count) / (sum / count), nil
}

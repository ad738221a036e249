package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrLength is returned when a signal length is not a power of two >= 2.
var ErrLength = errors.New("spectrum: length must be a power of two >= 2")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Analyzer computes one-sided power spectra of real frames of a fixed
// power-of-two length. It reuses its FFT plan and buffers and is not safe
// for concurrent use.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewAnalyzer returns an Analyzer for frames of size samples.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	return &Analyzer{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}, nil
}

// Size returns the frame length.
func (a *Analyzer) Size() int { return a.size }

// PowerSpectrum returns |X[k]|^2 for bins 0..size/2 of frame.
func (a *Analyzer) PowerSpectrum(frame []float64) ([]float64, error) {
	if len(frame) != a.size {
		return nil, fmt.Errorf("%w: frame has %d samples, analyzer %d", ErrLength, len(frame), a.size)
	}

	for i, x := range frame {
		a.in[i] = complex(x, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return Power(a.out[:a.size/2+1]), nil
}

// PowerSpectrum returns the one-sided power spectrum of signal, whose
// length must be a power of two.
func PowerSpectrum(signal []float64) ([]float64, error) {
	a, err := NewAnalyzer(len(signal))
	if err != nil {
		return nil, err
	}
	return a.PowerSpectrum(signal)
}

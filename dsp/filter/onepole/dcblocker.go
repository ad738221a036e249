package onepole

import (
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// DCBlocker removes the zero-frequency component of a signal.
//
//	y0 = x0 - x1 + coeff*y1,  coeff = 1 - 2*pi*cutoff/sampleRate
//
//   - Input 0: signal
//   - Output 0: zero-centered signal
type DCBlocker[T, F core.Float] struct {
	node.Unhashed

	x1, y1 F
	cutoff F
	coeff  F
}

// NewDCBlocker returns a DC blocker with a fixed cutoff in Hz, typically
// a few Hz.
func NewDCBlocker[T, F core.Float](sampleRate float64, cutoff F) *DCBlocker[T, F] {
	d := &DCBlocker[T, F]{cutoff: cutoff}
	d.Reset(sampleRate)
	return d
}

// ProcessSample filters one input sample and returns the output.
func (d *DCBlocker[T, F]) ProcessSample(x T) T {
	x0 := F(x)
	y0 := x0 - d.x1 + d.coeff*d.y1
	d.x1 = x0
	d.y1 = y0
	return T(y0)
}

// Tick implements [node.Node].
func (d *DCBlocker[T, F]) Tick(in, out []T) {
	out[0] = d.ProcessSample(in[0])
}

// Inputs implements [node.Node].
func (d *DCBlocker[T, F]) Inputs() int { return 1 }

// Outputs implements [node.Node].
func (d *DCBlocker[T, F]) Outputs() int { return 1 }

// Reset clears the filter state. A positive sampleRate recomputes the
// coefficient from the construction cutoff.
func (d *DCBlocker[T, F]) Reset(sampleRate float64) {
	if sampleRate > 0 {
		d.coeff = 1 - F(2*math.Pi/sampleRate)*d.cutoff
	}

	d.x1 = 0
	d.y1 = 0
}

// Coeff returns the feedback coefficient.
func (d *DCBlocker[T, F]) Coeff() F {
	return d.coeff
}

// Response implements [node.Responder].
func (d *DCBlocker[T, F]) Response(omega float64) complex128 {
	return firstOrderResponse(omega, 1, -1, -float64(d.coeff))
}

package biquad

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// Biquad is a second-order IIR filter in normalized Direct Form I.
//
// T is the sample type at the node boundary, F the precision of the
// coefficients and delay registers.
//   - Input 0: signal
//   - Output 0: filtered signal
type Biquad[T, F core.Float] struct {
	node.Unhashed

	coeffs Coefficients[F]

	x1, x2 F
	y1, y2 F
}

// NewBiquad returns a Biquad with the given coefficients and zero state.
func NewBiquad[T, F core.Float](c Coefficients[F]) *Biquad[T, F] {
	return &Biquad[T, F]{coeffs: c}
}

// SetCoefficients replaces the coefficients. The delay registers are kept,
// so the change takes effect on the next sample without smoothing.
func (b *Biquad[T, F]) SetCoefficients(c Coefficients[F]) {
	b.coeffs = c
}

// Coefficients returns the current coefficients.
func (b *Biquad[T, F]) Coefficients() Coefficients[F] {
	return b.coeffs
}

// ProcessSample filters one input sample and returns the output.
func (b *Biquad[T, F]) ProcessSample(x T) T {
	c := &b.coeffs
	x0 := F(x)
	y0 := c.B0*x0 + c.B1*b.x1 + c.B2*b.x2 - c.A1*b.y1 - c.A2*b.y2
	b.x2 = b.x1
	b.x1 = x0
	b.y2 = b.y1
	b.y1 = y0

	return T(y0)
}

// Tick implements [node.Node].
func (b *Biquad[T, F]) Tick(in, out []T) {
	out[0] = b.ProcessSample(in[0])
}

// Inputs implements [node.Node].
func (b *Biquad[T, F]) Inputs() int { return 1 }

// Outputs implements [node.Node].
func (b *Biquad[T, F]) Outputs() int { return 1 }

// Reset clears the delay registers. Coefficients are left untouched and the
// sample rate is ignored.
func (b *Biquad[T, F]) Reset(float64) {
	b.x1, b.x2 = 0, 0
	b.y1, b.y2 = 0, 0
}

// State returns the delay registers as [x1, x2, y1, y2].
func (b *Biquad[T, F]) State() [4]F {
	return [4]F{b.x1, b.x2, b.y1, b.y2}
}

// SetState restores delay registers saved by State.
func (b *Biquad[T, F]) SetState(state [4]F) {
	b.x1, b.x2, b.y1, b.y2 = state[0], state[1], state[2], state[3]
}

// Response implements [node.Responder] from the current coefficients.
func (b *Biquad[T, F]) Response(omega float64) complex128 {
	return b.coeffs.Response(omega)
}

// ImpulseResponse computes n samples of the impulse response. The filter
// state is saved and restored, so the call does not disturb processing.
func (b *Biquad[T, F]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved := b.State()
	b.Reset(node.KeepSampleRate)

	ir := make([]T, n)
	ir[0] = b.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = b.ProcessSample(0)
	}

	b.SetState(saved)
	return ir
}

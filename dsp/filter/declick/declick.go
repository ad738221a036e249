// Package declick provides a fade-in node that suppresses the click of a
// signal starting abruptly.
package declick

import (
	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
)

// Declicker multiplies its input with a smooth fade-in curve for duration
// seconds after Reset, then passes the input through unchanged.
//   - Input 0: signal
//   - Output 0: faded signal
type Declicker[T, F core.Float] struct {
	node.Unhashed

	t              F
	duration       F
	sampleDuration F
}

// NewDeclicker returns a Declicker fading in over duration seconds.
func NewDeclicker[T, F core.Float](sampleRate float64, duration F) *Declicker[T, F] {
	d := &Declicker[T, F]{duration: duration}
	d.Reset(sampleRate)
	return d
}

// ProcessSample applies the fade gain for the current time to x and
// advances time by one sample.
func (d *Declicker[T, F]) ProcessSample(x T) T {
	if d.t < d.duration {
		gain := core.Smooth9(core.Delerp(0, d.duration, d.t))
		d.t += d.sampleDuration
		return x * T(gain)
	}

	return x
}

// Tick implements [node.Node].
func (d *Declicker[T, F]) Tick(in, out []T) {
	out[0] = d.ProcessSample(in[0])
}

// Inputs implements [node.Node].
func (d *Declicker[T, F]) Inputs() int { return 1 }

// Outputs implements [node.Node].
func (d *Declicker[T, F]) Outputs() int { return 1 }

// Reset restarts the fade. A positive sampleRate rebinds the sample
// duration.
func (d *Declicker[T, F]) Reset(sampleRate float64) {
	if sampleRate > 0 {
		d.sampleDuration = F(1 / sampleRate)
	}

	d.t = 0
}

// Elapsed returns the time in seconds since the last Reset, saturating once
// the fade has completed.
func (d *Declicker[T, F]) Elapsed() F {
	return d.t
}

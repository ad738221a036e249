package node

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

var (
	errNegativeFrames = errors.New("node: frame count must be >= 0")
	errInputChannels  = errors.New("node: input channel count mismatch")
	errInputLength    = errors.New("node: input channel shorter than frame count")
)

// InputFunc supplies the value of input channel ch at frame i.
type InputFunc[T core.Float] func(ch, i int) T

// Constant returns an InputFunc that feeds the same value per channel on
// every frame. It is convenient for driving control inputs.
func Constant[T core.Float](values ...T) InputFunc[T] {
	return func(ch, _ int) T { return values[ch] }
}

// Render ticks n frames times with input channels read from inputs and
// returns one slice per output channel. inputs must hold exactly
// n.Inputs() channels of at least frames samples each.
func Render[T core.Float](n Node[T], inputs [][]T, frames int) ([][]T, error) {
	if len(inputs) != n.Inputs() {
		return nil, fmt.Errorf("%w: got %d, want %d", errInputChannels, len(inputs), n.Inputs())
	}

	for ch, in := range inputs {
		if len(in) < frames {
			return nil, fmt.Errorf("%w: channel %d has %d, want %d", errInputLength, ch, len(in), frames)
		}
	}

	return RenderFunc(n, func(ch, i int) T { return inputs[ch][i] }, frames)
}

// RenderFunc ticks n frames times with inputs pulled from fn and returns
// one slice per output channel. fn may be nil for nodes without inputs.
func RenderFunc[T core.Float](n Node[T], fn InputFunc[T], frames int) ([][]T, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeFrames, frames)
	}

	in := make([]T, n.Inputs())
	out := make([]T, n.Outputs())
	Check(n, in, out)

	outputs := make([][]T, n.Outputs())
	for ch := range outputs {
		outputs[ch] = make([]T, frames)
	}

	for i := range frames {
		for ch := range in {
			in[ch] = fn(ch, i)
		}

		n.Tick(in, out)

		for ch, v := range out {
			outputs[ch][i] = v
		}
	}

	return outputs, nil
}

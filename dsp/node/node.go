package node

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// KeepSampleRate passed to Reset leaves the current sample rate binding
// unchanged.
const KeepSampleRate = 0

// Node is a sample-synchronous processor with a fixed number of input and
// output channels.
//
// Tick reads Inputs() values from in and writes Outputs() values to out.
// Slice lengths are a caller contract and are not checked on the hot path;
// use [Check] at graph construction time. Tick must not allocate.
//
// Reset reinitializes recurrence state. A positive sampleRate rebinds every
// sample-rate-dependent constant; a non-positive sampleRate keeps the
// current binding. After Reset the node behaves like a freshly constructed
// one, apart from the cached hash and sample rate.
//
// SetHash records a seed consumed by the next Reset. Graph builders use it
// to decorrelate structurally identical copies of a node.
type Node[T core.Float] interface {
	Inputs() int
	Outputs() int
	Tick(in, out []T)
	Reset(sampleRate float64)
	SetHash(hash uint32)
}

// Responder is implemented by linear time-invariant nodes that can report
// their transfer function.
//
// Response evaluates H(z) at z = exp(i*2*pi*omega), where omega is the
// frequency normalized to the sample rate (0 is DC, 0.5 is Nyquist). It does
// not touch recurrence state.
type Responder interface {
	Response(omega float64) complex128
}

// Unhashed can be embedded by nodes that have no use for a seed.
type Unhashed struct{}

// SetHash is a no-op.
func (Unhashed) SetHash(uint32) {}

// Check panics if in or out are too short for n.
func Check[T core.Float](n Node[T], in, out []T) {
	if len(in) < n.Inputs() {
		panic(fmt.Sprintf("node: %d inputs given, %T needs %d", len(in), n, n.Inputs()))
	}

	if len(out) < n.Outputs() {
		panic(fmt.Sprintf("node: %d outputs given, %T needs %d", len(out), n, n.Outputs()))
	}
}

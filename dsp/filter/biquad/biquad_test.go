package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nodes/dsp/node"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// passthrough returns coefficients for a unity gain passthrough (B0=1, all else 0).
func passthrough() Coefficients[float64] {
	return Coefficients[float64]{B0: 1}
}

func traceCoeffs() Coefficients[float64] {
	return Coefficients[float64]{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

var (
	_ node.Node[float64] = (*Biquad[float64, float64])(nil)
	_ node.Node[float32] = (*Biquad[float32, float64])(nil)
	_ node.Responder     = (*Biquad[float64, float64])(nil)
	_ node.Node[float64] = (*ButterLowpass[float64, float64])(nil)
	_ node.Node[float32] = (*Resonator[float32, float32])(nil)
	_ node.Responder     = (*Resonator[float64, float64])(nil)
)

func TestNewBiquad(t *testing.T) {
	c := Coefficients[float64]{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	b := NewBiquad[float64](c)
	if b.Coefficients() != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", b.Coefficients(), c)
	}
	if st := b.State(); st != [4]float64{} {
		t.Fatalf("initial state not zero: %v", st)
	}
	if b.Inputs() != 1 || b.Outputs() != 1 {
		t.Fatalf("arity = %d/%d, want 1/1", b.Inputs(), b.Outputs())
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	b := NewBiquad[float64](passthrough())
	input := []float64{1, 0, -1, 0.5, 0.25}
	for i, x := range input {
		y := b.ProcessSample(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DirectFormI(t *testing.T) {
	// Hand-traced y0 = b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2 for an impulse:
	//
	// n=0: y = 0.25
	// n=1: y = 0.5 + 0.2*0.25 = 0.55
	// n=2: y = 0.25 + 0.2*0.55 - 0.04*0.25 = 0.35
	// n=3: y = 0.2*0.35 - 0.04*0.55 = 0.048
	// n=4: y = 0.2*0.048 - 0.04*0.35 = -0.0044
	// n=5: y = 0.2*(-0.0044) - 0.04*0.048 = -0.0028
	b := NewBiquad[float64](traceCoeffs())

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		y := b.ProcessSample(x)
		if !almostEqual(y, w, 1e-12) {
			t.Fatalf("n=%d: got %v, want %v", i, y, w)
		}
	}
}

func TestProcessSample_MatchesTransposedDirectFormII(t *testing.T) {
	c := ButterLowpassCoefficients(48000.0, 1200.0)
	b := NewBiquad[float64](c)

	var s1, s2 float64
	for i := range 512 {
		x := math.Sin(float64(i)*0.37) + 0.3*math.Cos(float64(i)*1.91)
		y := b.ProcessSample(x)

		ref := c.B0*x + s1
		s1 = s2 + c.B1*x - c.A1*ref
		s2 = c.B2*x - c.A2*ref

		if !almostEqual(y, ref, 1e-12) {
			t.Fatalf("n=%d: DF-I %v, DF-IIT %v", i, y, ref)
		}
	}
}

func TestTickMatchesProcessSample(t *testing.T) {
	a := NewBiquad[float64](traceCoeffs())
	b := NewBiquad[float64](traceCoeffs())
	in := make([]float64, 1)
	out := make([]float64, 1)
	for i := range 32 {
		x := float64(i%5) - 2
		in[0] = x
		b.Tick(in, out)
		if want := a.ProcessSample(x); out[0] != want {
			t.Fatalf("n=%d: Tick %v, ProcessSample %v", i, out[0], want)
		}
	}
}

func TestResetClearsStateKeepsCoefficients(t *testing.T) {
	b := NewBiquad[float64](traceCoeffs())
	for range 10 {
		b.ProcessSample(1)
	}
	if b.State() == [4]float64{} {
		t.Fatal("state should be non-zero after processing")
	}

	b.Reset(48000)
	if st := b.State(); st != [4]float64{} {
		t.Fatalf("state after reset = %v, want zero", st)
	}
	if b.Coefficients() != traceCoeffs() {
		t.Fatalf("reset changed coefficients: %v", b.Coefficients())
	}

	fresh := NewBiquad[float64](traceCoeffs())
	for i := range 16 {
		if got, want := b.ProcessSample(1), fresh.ProcessSample(1); got != want {
			t.Fatalf("n=%d: reset %v, fresh %v", i, got, want)
		}
	}
}

func TestSetCoefficientsKeepsState(t *testing.T) {
	b := NewBiquad[float64](traceCoeffs())
	b.ProcessSample(1)
	before := b.State()

	b.SetCoefficients(passthrough())
	if b.State() != before {
		t.Fatalf("SetCoefficients changed state: %v -> %v", before, b.State())
	}
	if y := b.ProcessSample(0.5); y != 0.5 {
		t.Fatalf("passthrough after switch = %v, want 0.5", y)
	}
}

func TestImpulseResponsePreservesState(t *testing.T) {
	b := NewBiquad[float64](traceCoeffs())
	b.ProcessSample(0.7)
	b.ProcessSample(-0.2)
	saved := b.State()

	ir := b.ImpulseResponse(6)
	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	for i := range want {
		if !almostEqual(ir[i], want[i], 1e-12) {
			t.Fatalf("ir[%d] = %v, want %v", i, ir[i], want[i])
		}
	}

	if b.State() != saved {
		t.Fatalf("state not restored: %v, want %v", b.State(), saved)
	}
	if b.ImpulseResponse(0) != nil {
		t.Fatal("ImpulseResponse(0) should be nil")
	}
}

func TestBiquadFloat32Samples(t *testing.T) {
	b64 := NewBiquad[float64](traceCoeffs())
	b32 := NewBiquad[float32](traceCoeffs())
	for i := range 64 {
		x := math.Sin(float64(i) * 0.2)
		y64 := b64.ProcessSample(x)
		y32 := b32.ProcessSample(float32(x))
		if !almostEqual(float64(y32), y64, 1e-6) {
			t.Fatalf("n=%d: float32 %v, float64 %v", i, y32, y64)
		}
	}
}

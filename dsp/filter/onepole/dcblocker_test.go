package onepole

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-nodes/dsp/node"
)

func TestDCBlockerCoefficient(t *testing.T) {
	d := NewDCBlocker[float64](48000, 10.0)
	if want := 1 - 2*math.Pi*10/48000; math.Abs(d.Coeff()-want) > 1e-15 {
		t.Fatalf("coeff = %v, want %v", d.Coeff(), want)
	}
	if d.Inputs() != 1 || d.Outputs() != 1 {
		t.Fatalf("arity = %d/%d, want 1/1", d.Inputs(), d.Outputs())
	}
}

func TestDCBlockerSuppressesDC(t *testing.T) {
	d := NewDCBlocker[float64](48000, 10.0)
	var y float64
	for range 48000 {
		y = d.ProcessSample(0.8)
	}
	if math.Abs(y) > 1e-3 {
		t.Fatalf("steady-state output for DC input = %v, want ~0", y)
	}
}

func TestDCBlockerPassesAlternating(t *testing.T) {
	sr := 48000.0
	d := NewDCBlocker[float64](sr, 10.0)
	w := 2 * math.Pi * 1000 / sr

	var peak float64
	for i := range 20000 {
		y := d.ProcessSample(0.3 + math.Sin(w*float64(i)))
		if i > 15000 && math.Abs(y) > peak {
			peak = math.Abs(y)
		}
	}
	if math.Abs(peak-1) > 0.01 {
		t.Fatalf("1 kHz peak = %v, want ~1", peak)
	}

	// Nyquist-rate alternation.
	d.Reset(node.KeepSampleRate)
	var y float64
	for i := range 10000 {
		x := 1.0
		if i%2 == 1 {
			x = -1
		}
		y = d.ProcessSample(x)
	}
	if math.Abs(math.Abs(y)-1) > 1e-3 {
		t.Fatalf("Nyquist output = %v, want magnitude ~1", y)
	}
}

func TestDCBlockerResponse(t *testing.T) {
	d := NewDCBlocker[float64](44100, 20.0)
	if h := cmplx.Abs(d.Response(0)); h != 0 {
		t.Fatalf("|H(0)| = %v, want 0", h)
	}
	if h := cmplx.Abs(d.Response(0.25)); math.Abs(h-1) > 1e-2 {
		t.Fatalf("|H(fs/4)| = %v, want ~1", h)
	}
}

func TestDCBlockerResetRebindsSampleRate(t *testing.T) {
	d := NewDCBlocker[float64](44100, 5.0)
	for range 100 {
		d.ProcessSample(1)
	}

	d.Reset(96000)
	fresh := NewDCBlocker[float64](96000, 5.0)
	if d.Coeff() != fresh.Coeff() {
		t.Fatalf("coeff = %v, want %v", d.Coeff(), fresh.Coeff())
	}
	for i := range 100 {
		if got, want := d.ProcessSample(1), fresh.ProcessSample(1); got != want {
			t.Fatalf("n=%d: reset %v, fresh %v", i, got, want)
		}
	}
}

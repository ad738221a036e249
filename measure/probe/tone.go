package probe

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
	"github.com/cwbudde/algo-nodes/dsp/spectrum"
)

const (
	defaultAmplitude     = 0.5
	defaultPeriods       = 200
	defaultSettleSeconds = 0.25
)

var (
	errNoSignalInput = errors.New("probe: node has no signal input")
	errNoOutput      = errors.New("probe: node has no outputs")
	errControls      = errors.New("probe: control count mismatch")
	errSilentInput   = errors.New("probe: stimulus has no energy at the probe frequency")
)

// ToneConfig describes a single-frequency measurement.
//
// Input channel 0 receives Amplitude*sin(2*pi*Frequency*t). Channels
// 1..Inputs()-1 receive the constant Controls in order.
type ToneConfig struct {
	SampleRate float64
	Frequency  float64
	Amplitude  float64
	// Settle is the number of frames rendered before measuring. It
	// defaults to a quarter second.
	Settle int
	// Periods of the probe frequency in the measured block.
	Periods  int
	Controls []float64
}

// ToneResult holds the measured transfer from input 0 to output 0.
type ToneResult struct {
	Gain   complex128
	GainDB float64
	Phase  float64
	Frames int
}

func normalizeToneConfig(cfg ToneConfig) ToneConfig {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = core.DefaultSampleRate
	}

	if cfg.Amplitude == 0 {
		cfg.Amplitude = defaultAmplitude
	}

	if cfg.Periods <= 0 {
		cfg.Periods = defaultPeriods
	}

	if cfg.Settle <= 0 {
		cfg.Settle = int(cfg.SampleRate * defaultSettleSeconds)
	}

	return cfg
}

// ToneGain resets n to cfg.SampleRate, drives it with a sine and returns
// the ratio of output to input DFT terms at the probe frequency.
func ToneGain[T core.Float](n node.Node[T], cfg ToneConfig) (ToneResult, error) {
	cfg = normalizeToneConfig(cfg)

	if n.Inputs() < 1 {
		return ToneResult{}, errNoSignalInput
	}

	if n.Outputs() < 1 {
		return ToneResult{}, errNoOutput
	}

	if len(cfg.Controls) != n.Inputs()-1 {
		return ToneResult{}, fmt.Errorf("%w: got %d, want %d", errControls, len(cfg.Controls), n.Inputs()-1)
	}

	gin, err := spectrum.NewGoertzel(cfg.Frequency, cfg.SampleRate)
	if err != nil {
		return ToneResult{}, fmt.Errorf("probe: %w", err)
	}

	gout, _ := spectrum.NewGoertzel(cfg.Frequency, cfg.SampleRate)

	frames := 1
	if cfg.Frequency > 0 {
		frames = int(math.Round(float64(cfg.Periods) * cfg.SampleRate / cfg.Frequency))
	}

	frames = max(frames, cfg.Periods)

	n.Reset(cfg.SampleRate)

	in := make([]T, n.Inputs())
	out := make([]T, n.Outputs())

	for i, c := range cfg.Controls {
		in[i+1] = T(c)
	}

	step := 2 * math.Pi * cfg.Frequency / cfg.SampleRate
	if cfg.Frequency == 0 {
		// A DC probe drives a constant; a sine at 0 Hz would be silent.
		step = 0
	}

	for i := range cfg.Settle + frames {
		x := cfg.Amplitude * stimulus(step, i)
		in[0] = T(x)
		n.Tick(in, out)

		if i >= cfg.Settle {
			// Input and output are sampled with the same lag so their
			// ratio is independent of where the block starts.
			gin.ProcessSample(float64(in[0]))
			gout.ProcessSample(float64(out[0]))
		}
	}

	x := gin.Bin()
	if cmplx.Abs(x) == 0 {
		return ToneResult{}, errSilentInput
	}

	h := gout.Bin() / x

	return ToneResult{
		Gain:   h,
		GainDB: core.LinearToDB(cmplx.Abs(h)),
		Phase:  cmplx.Phase(h),
		Frames: frames,
	}, nil
}

func stimulus(step float64, i int) float64 {
	if step == 0 {
		return 1
	}
	return math.Sin(step * float64(i))
}

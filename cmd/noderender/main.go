// Command noderender renders a processing node to a mono WAV file.
//
// Usage:
//
//	noderender [flags]
//
// Filter nodes are driven by seeded white noise, oscillators by their
// frequency flag. With -response, the frequency response of a linear node
// is printed instead of rendering.
//
// Examples:
//
//	noderender -node sine -freq 440 -output sine.wav
//	noderender -node resonator -center 1200 -bandwidth 40 -duration 3
//	noderender -node butter -cutoff 800 -response
//	noderender -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/node"
	"github.com/cwbudde/algo-nodes/measure/probe"
)

var errNotLinear = errors.New("node does not report a frequency response")

type options struct {
	nodeName string
	output   string
	gain     float64
	list     bool
	response bool
	cfg      core.ProcessorConfig
	params   params
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("noderender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	nodeName := fs.String("node", "sine", "node to render (see -list)")
	freq := fs.Float64("freq", 440, "oscillator frequency in Hz")
	cutoff := fs.Float64("cutoff", 1000, "lowpass / DC blocker cutoff in Hz")
	center := fs.Float64("center", 1000, "resonator center frequency in Hz")
	bandwidth := fs.Float64("bandwidth", 50, "resonator -3 dB bandwidth in Hz")
	duration := fs.Float64("duration", 2, "render length in seconds")
	sampleRate := fs.Int("sample-rate", 48000, "output sample rate in Hz")
	hash := fs.Uint("hash", 0, "seed for noise and oscillator phase")
	mlsBits := fs.Uint("mls-bits", 16, "MLS register width (1-31)")
	gain := fs.Float64("gain", 0.5, "linear output gain")
	output := fs.String("output", "node.wav", "output WAV path")
	list := fs.Bool("list", false, "list available nodes")
	response := fs.Bool("response", false, "print the frequency response instead of rendering")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: noderender [flags]\n\n")
		fmt.Fprintf(stderr, "Renders a processing node to a 16-bit mono WAV file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *duration <= 0 {
		return options{}, fmt.Errorf("duration must be > 0: %v", *duration)
	}

	if *sampleRate <= 0 {
		return options{}, fmt.Errorf("sample rate must be > 0: %d", *sampleRate)
	}

	if *mlsBits < 1 || *mlsBits > 31 {
		return options{}, fmt.Errorf("mls-bits must be in [1,31]: %d", *mlsBits)
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(float64(*sampleRate)))

	return options{
		nodeName: *nodeName,
		output:   *output,
		gain:     *gain,
		list:     *list,
		response: *response,
		cfg:      cfg,
		params: params{
			sampleRate: cfg.SampleRate,
			freq:       *freq,
			cutoff:     *cutoff,
			center:     *center,
			bandwidth:  *bandwidth,
			duration:   *duration,
			hash:       uint32(*hash),
			mlsBits:    uint32(*mlsBits),
		},
	}, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		return printList(stdout)
	}

	entry, err := lookup(opts.nodeName)
	if err != nil {
		return err
	}

	p := entry.build(opts.params)
	p.node.SetHash(opts.params.hash)
	p.node.Reset(opts.cfg.SampleRate)

	if opts.response {
		// Controlled filters design their coefficients on the first tick.
		if _, err := node.RenderFunc(p.node, p.input, 1); err != nil {
			return err
		}
		return printResponse(stdout, entry.name, p, opts.params)
	}

	frames := int(math.Round(opts.params.duration * opts.cfg.SampleRate))

	samples, err := render(p, frames, opts.gain)
	if err != nil {
		return err
	}

	if err := writeMonoWAV(opts.output, samples, int(opts.cfg.SampleRate)); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	st := probe.SignalStats(samples)
	fmt.Fprintf(stdout, "wrote %s: %s, %d frames at %d Hz\n", opts.output, entry.name, frames, int(opts.cfg.SampleRate))
	fmt.Fprintf(stdout, "  peak %.2f dBFS, rms %.2f dBFS, dc %.4f, crest %.2f\n", st.PeakdB, st.RMSdB, st.DC, st.CrestFactor)

	return nil
}

// render ticks the patch and returns the scaled first output channel.
func render(p patch, frames int, gain float64) ([]float32, error) {
	outputs, err := node.RenderFunc(p.node, p.input, frames)
	if err != nil {
		return nil, err
	}

	out := make([]float32, frames)
	for i, v := range outputs[0] {
		out[i] = float32(v * gain)
	}

	return out, nil
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	byName := make(map[string]string, len(registry))
	for _, e := range registry {
		byName[e.name] = e.desc
	}

	for _, name := range names() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", name, byName[name]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// responseFrequencies returns octave-spaced frequencies from 31.25 Hz up
// to just below Nyquist.
func responseFrequencies(sampleRate float64) []float64 {
	var out []float64
	for f := 31.25; f < sampleRate/2; f *= 2 {
		out = append(out, f)
	}
	return out
}

func printResponse(w io.Writer, name string, p patch, prm params) error {
	r, ok := p.node.(node.Responder)
	if !ok {
		return fmt.Errorf("%s: %w", name, errNotLinear)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\tPhase [deg]\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "---------\t--------------\t-----------\n"); err != nil {
		return err
	}

	for _, f := range responseFrequencies(prm.sampleRate) {
		h := r.Response(f / prm.sampleRate)
		if _, err := fmt.Fprintf(tw, "%.2f\t%.2f\t%.1f\n",
			f,
			core.LinearToDB(cmplx.Abs(h)),
			cmplx.Phase(h)*180/math.Pi,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-nodes/dsp/filter/biquad"
	"github.com/cwbudde/algo-nodes/dsp/filter/declick"
	"github.com/cwbudde/algo-nodes/dsp/filter/onepole"
	"github.com/cwbudde/algo-nodes/dsp/node"
	"github.com/cwbudde/algo-nodes/dsp/noise"
	"github.com/cwbudde/algo-nodes/dsp/osc"
)

// params carries the flag values a node may read.
type params struct {
	sampleRate float64
	freq       float64
	cutoff     float64
	center     float64
	bandwidth  float64
	duration   float64
	hash       uint32
	mlsBits    uint32
}

// patch is a node plus the source feeding its inputs.
type patch struct {
	node  node.Node[float64]
	input node.InputFunc[float64]
}

type nodeEntry struct {
	name  string
	desc  string
	build func(p params) patch
}

var registry = []nodeEntry{
	{"sine", "sine oscillator at -freq", buildSine},
	{"noise", "uniform white noise (LCG)", buildWhite},
	{"mls", "maximum length sequence noise", buildMLS},
	{"butter", "2-pole Butterworth lowpass at -cutoff on white noise", buildButter},
	{"resonator", "resonator at -center/-bandwidth on white noise", buildResonator},
	{"onepole", "one-pole lowpass at -cutoff on white noise", buildOnePole},
	{"dcblock", "DC blocker at -cutoff on offset white noise", buildDCBlock},
	{"declick", "sine at -freq faded in over -duration/4", buildDeclick},
}

func lookup(name string) (nodeEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return nodeEntry{}, fmt.Errorf("unknown node %q (use -list to see available)", name)
}

func names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	sort.Strings(out)
	return out
}

// whiteSource returns a seeded noise generator used as a filter input.
func whiteSource(p params) func() float64 {
	w := noise.NewWhite[float64]()
	w.SetHash(p.hash)
	w.Reset(p.sampleRate)
	return w.ProcessSample
}

// filtered feeds channel 0 from src and channels 1.. from controls.
func filtered(src func() float64, controls ...float64) node.InputFunc[float64] {
	return func(ch, _ int) float64 {
		if ch == 0 {
			return src()
		}
		return controls[ch-1]
	}
}

func buildSine(p params) patch {
	return patch{osc.NewSine[float64](), node.Constant(p.freq)}
}

func buildWhite(params) patch {
	return patch{noise.NewWhite[float64](), nil}
}

func buildMLS(p params) patch {
	return patch{noise.NewMLSNoise[float64](noise.NewMLS(p.mlsBits)), nil}
}

func buildButter(p params) patch {
	return patch{
		biquad.NewButterLowpass[float64, float64](p.sampleRate),
		filtered(whiteSource(p), p.cutoff),
	}
}

func buildResonator(p params) patch {
	return patch{
		biquad.NewResonator[float64, float64](p.sampleRate),
		filtered(whiteSource(p), p.center, p.bandwidth),
	}
}

func buildOnePole(p params) patch {
	return patch{
		onepole.NewLowpass[float64, float64](p.sampleRate),
		filtered(whiteSource(p), p.cutoff),
	}
}

func buildDCBlock(p params) patch {
	src := whiteSource(p)
	return patch{
		onepole.NewDCBlocker[float64](p.sampleRate, p.cutoff),
		filtered(func() float64 { return 0.5*src() + 0.5 }),
	}
}

func buildDeclick(p params) patch {
	sine := osc.NewSine[float64]()
	sine.SetHash(p.hash)
	sine.Reset(p.sampleRate)

	return patch{
		declick.NewDeclicker[float64](p.sampleRate, p.duration/4),
		filtered(func() float64 { return sine.ProcessSample(p.freq) }),
	}
}

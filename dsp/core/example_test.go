package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=48000 blockSize=256
}

func ExampleSmooth9() {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.4f ", core.Smooth9(x))
	}
	fmt.Println()

	// Output:
	// 0.0000 0.0489 0.5000 0.9511 1.0000
}

// Package probe characterizes nodes offline by driving them and
// analyzing what comes out.
//
// [ToneGain] measures the complex steady-state gain of a node at one
// frequency, which for linear nodes should agree with their reported
// Response. [AveragedSpectrum] and [SpectralFlatness] describe the
// spectra of noise sources and of filtered noise.
//
//	lp := biquad.NewButterLowpass[float64, float64](48000)
//	res, _ := probe.ToneGain[float64](lp, probe.ToneConfig{
//	    SampleRate: 48000,
//	    Frequency:  1000,
//	    Controls:   []float64{2000},
//	})
//	fmt.Printf("%.2f dB\n", res.GainDB)
package probe

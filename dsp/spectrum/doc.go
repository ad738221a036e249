// Package spectrum provides the frequency-domain analysis used to
// characterize nodes offline: FFT power spectra, per-bin magnitude and
// power, and a single-bin Goertzel analyzer for tone measurements.
package spectrum

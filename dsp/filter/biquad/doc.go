// Package biquad provides second-order IIR filter nodes.
//
// [Coefficients] holds the normalized transfer function
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// and is designed from physical parameters by [ButterLowpassCoefficients]
// and [ResonatorCoefficients]. [Biquad] runs the recurrence in normalized
// Direct Form I. [ButterLowpass] and [Resonator] wrap a Biquad and take
// their control values (cutoff, center, bandwidth) through input channels,
// redesigning coefficients only when a control value changes.
//
// Design functions do not validate their arguments. A cutoff at or above
// Nyquist yields a valid but meaningless, possibly unstable filter; use
// [Coefficients.Stable] to check.
package biquad

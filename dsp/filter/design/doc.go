// Package design produces discrete-time Butterworth filter coefficients
// directly in the Z domain.
//
// [Butterworth] derives full-order numerator/denominator coefficient
// sequences via the bilinear-transform procedure: edge frequencies are
// pre-warped, the maximally-flat analog prototype poles are placed on
// the left half of the unit circle, mapped through the analog lowpass/
// highpass/bandpass/bandstop transform, then carried into the z-plane.
// Zeros follow structurally from the filter type, so no root finding is
// needed. The numerator is scaled for unity gain at the type-specific
// reference frequency (DC, Nyquist or band center).
//
// The result is a [direct.Coefficients] value consumable by
// dsp/filter/direct for per-sample processing. Design runs once at
// configuration time and is not performance sensitive.
//
// Edge frequencies are angular (rad/s). Callers are responsible for
// keeping edges meaningfully below Nyquist (pi/sampleTime); the design
// proceeds regardless and near-Nyquist edges degrade gracefully into
// useless but finite filters.
package design

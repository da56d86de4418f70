// Package direct implements an arbitrary-order direct-form-I recursive
// (IIR) filter evaluated sample by sample from a difference equation.
//
// A [Coefficients] value holds the denominator (natural response) and
// numerator (forced response) coefficient sequences of the discrete
// transfer function, stored highest power first. Designers such as
// dsp/filter/design produce Coefficients; [Filter] consumes them at
// runtime.
//
// Filter is generic over the sample type so the per-sample hot path can
// run in float32 on constrained targets while designs are always derived
// in float64. ProcessSample is allocation-free and O(N) in the fixed
// coefficient count.
package direct

package direct

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{jw·Ts}) at the
// angular frequency w (rad/s) for the given sample time (seconds).
//
// With coefficients stored highest power first, index k multiplies the
// k-sample delay, so the transfer function is evaluated as the ratio of
// two finite sums sum_k c[k]·e^{-jkwTs}.
func (c Coefficients) Response(w, sampleTime float64) complex128 {
	omega := w * sampleTime

	var num, den complex128
	for k := range c.Forced {
		e := cmplx.Exp(complex(0, -omega*float64(k)))
		num += complex(c.Forced[k], 0) * e
		den += complex(c.Natural[k], 0) * e
	}

	return num / den
}

// Magnitude returns |H| at angular frequency w (rad/s).
func (c Coefficients) Magnitude(w, sampleTime float64) float64 {
	return cmplx.Abs(c.Response(w, sampleTime))
}

// MagnitudeDB returns 20*log10(|H|) at angular frequency w (rad/s).
func (c Coefficients) MagnitudeDB(w, sampleTime float64) float64 {
	return 20 * math.Log10(c.Magnitude(w, sampleTime))
}

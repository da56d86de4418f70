package direct

import (
	"errors"
	"math"
)

// Errors returned by coefficient validation.
var (
	ErrEmptyCoefficients    = errors.New("direct: coefficient sequences are empty")
	ErrLengthMismatch       = errors.New("direct: natural and forced sequences differ in length")
	ErrDegenerateNormalizer = errors.New("direct: leading natural coefficient is zero or non-finite")
)

// Coefficients holds the transfer function coefficients of a recursive
// filter. Natural is the denominator (feedback) sequence, Forced the
// numerator (feedforward) sequence. Both are stored highest power first,
// so index k multiplies the k-sample delay in the difference equation:
//
//	y(n) = (1/a[0]) * (sum_k b[k]*x(n-k) - sum_{k>=1} a[k]*y(n-k))
//
// with a = Natural and b = Forced.
type Coefficients struct {
	Natural []float64
	Forced  []float64
}

// Len returns the coefficient count N (order+1 for single-edge designs,
// 2*order+1 for band designs).
func (c Coefficients) Len() int {
	return len(c.Natural)
}

// Validate checks the structural invariants a runtime filter relies on:
// equal non-zero lengths and a usable leading natural coefficient.
// The leading natural term is the per-sample normalization divisor; a
// zero here would surface as division by zero inside the hot path.
func (c Coefficients) Validate() error {
	if len(c.Natural) == 0 || len(c.Forced) == 0 {
		return ErrEmptyCoefficients
	}

	if len(c.Natural) != len(c.Forced) {
		return ErrLengthMismatch
	}

	a0 := c.Natural[0]
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return ErrDegenerateNormalizer
	}

	return nil
}

// Clone returns a deep copy. Filters copy their coefficients on
// construction; Clone is for callers that want the same isolation.
func (c Coefficients) Clone() Coefficients {
	out := Coefficients{
		Natural: make([]float64, len(c.Natural)),
		Forced:  make([]float64, len(c.Forced)),
	}
	copy(out.Natural, c.Natural)
	copy(out.Forced, c.Forced)

	return out
}

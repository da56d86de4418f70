package design

import "math"

// expandPolynomial multiplies out (x - r0)(x - r1)...(x - rn-1) into real
// coefficients in ascending power order (constant term first, leading
// term last). The expansion is monic, so the leading coefficient is
// exactly 1.
//
// Roots arrive in conjugate pairs (or real), so the imaginary parts of
// the accumulated coefficients cancel up to floating round-off. Only the
// real parts are returned; the second result is the largest discarded
// imaginary magnitude so callers can reject a pairing bug instead of
// silently keeping a wrong polynomial.
func expandPolynomial(roots []complex128) ([]float64, float64) {
	coeff := make([]complex128, len(roots)+1)
	coeff[0] = 1

	for i, root := range roots {
		next := make([]complex128, len(coeff))
		for j := 0; j <= i; j++ {
			next[j] -= coeff[j] * root
			next[j+1] += coeff[j]
		}

		coeff = next
	}

	out := make([]float64, len(coeff))
	residual := 0.0

	for i, c := range coeff {
		out[i] = real(c)
		if im := math.Abs(imag(c)); im > residual {
			residual = im
		}
	}

	return out, residual
}

// reversed returns the coefficients in descending power order (leading
// term first), the storage convention of [direct.Coefficients].
func reversed(asc []float64) []float64 {
	out := make([]float64, len(asc))
	for i, v := range asc {
		out[len(asc)-1-i] = v
	}

	return out
}

// maxAbs returns the largest absolute value in the slice.
func maxAbs(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

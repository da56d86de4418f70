package design

import (
	"math"
	"testing"
)

func TestExpandPolynomial_RealRoots(t *testing.T) {
	// (x - 1)(x + 2) = x^2 + x - 2
	coeffs, residual := expandPolynomial([]complex128{1, -2})

	want := []float64{-2, 1, 1}
	if len(coeffs) != len(want) {
		t.Fatalf("len = %d, want %d", len(coeffs), len(want))
	}

	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-12 {
			t.Errorf("coeff[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}

	if residual != 0 {
		t.Errorf("residual = %v for real roots", residual)
	}
}

func TestExpandPolynomial_ConjugatePair(t *testing.T) {
	// (x - (1+2i))(x - (1-2i)) = x^2 - 2x + 5
	coeffs, residual := expandPolynomial([]complex128{
		complex(1, 2),
		complex(1, -2),
	})

	want := []float64{5, -2, 1}
	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-12 {
			t.Errorf("coeff[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}

	if residual > 1e-12 {
		t.Errorf("residual = %v, expected cancellation", residual)
	}
}

func TestExpandPolynomial_Monic(t *testing.T) {
	coeffs, _ := expandPolynomial([]complex128{-1, -1, -1})
	if coeffs[len(coeffs)-1] != 1 {
		t.Fatalf("leading coefficient = %v, want exactly 1", coeffs[len(coeffs)-1])
	}
}

func TestExpandPolynomial_UnpairedRootLeavesResidual(t *testing.T) {
	_, residual := expandPolynomial([]complex128{complex(0.3, 0.7)})
	if residual < 0.5 {
		t.Fatalf("residual = %v, expected the imaginary part to survive", residual)
	}
}

func TestReversed(t *testing.T) {
	got := reversed([]float64{1, 2, 3})
	want := []float64{3, 2, 1}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reversed = %v, want %v", got, want)
		}
	}
}

func TestMaxAbs(t *testing.T) {
	if got := maxAbs([]float64{-3, 2, 0.5}); got != 3 {
		t.Fatalf("maxAbs = %v, want 3", got)
	}

	if got := maxAbs(nil); got != 0 {
		t.Fatalf("maxAbs(nil) = %v, want 0", got)
	}
}

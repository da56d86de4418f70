package testutil

import (
	"math"
	"testing"
)

func TestImpulse(t *testing.T) {
	sig := Impulse(8, 2)
	for i, v := range sig {
		want := 0.0
		if i == 2 {
			want = 1
		}
		if v != want {
			t.Fatalf("index %d: %v, want %v", i, v, want)
		}
	}

	if sig := Impulse(4, 10); sig[0] != 0 {
		t.Fatal("out-of-range position should produce all zeros")
	}
}

func TestUnitStep(t *testing.T) {
	sig := UnitStep(6, 2)
	want := []float64{0, 0, 1, 1, 1, 1}
	for i := range want {
		if sig[i] != want[i] {
			t.Fatalf("UnitStep = %v, want %v", sig, want)
		}
	}
}

func TestDCAndOnes(t *testing.T) {
	for _, v := range DC(2.5, 5) {
		if v != 2.5 {
			t.Fatalf("DC value %v, want 2.5", v)
		}
	}

	for _, v := range Ones(3) {
		if v != 1 {
			t.Fatalf("Ones value %v, want 1", v)
		}
	}
}

func TestDeterministicSine(t *testing.T) {
	sig := DeterministicSine(1000, 0.001, 2, 16)
	if sig[0] != 0 {
		t.Fatalf("sine should start at 0, got %v", sig[0])
	}

	if math.Abs(sig[1]-2*math.Sin(1)) > 1e-12 {
		t.Fatalf("sig[1] = %v, want %v", sig[1], 2*math.Sin(1))
	}
}

func TestDeterministicNoise_Reproducible(t *testing.T) {
	a := DeterministicNoise(42, 1, 32)
	b := DeterministicNoise(42, 1, 32)

	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different noise")
		}

		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("amplitude out of range: %v", a[i])
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2}, []float64{1.5, 1})
	if err != nil {
		t.Fatal(err)
	}

	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

package design

import "testing"

func TestNumCoefficients(t *testing.T) {
	cases := []struct {
		order int
		typ   Type
		want  int
	}{
		{1, LowPass, 2},
		{4, LowPass, 5},
		{1, HighPass, 2},
		{4, HighPass, 5},
		{1, BandPass, 3},
		{3, BandPass, 7},
		{1, BandStop, 3},
		{3, BandStop, 7},
	}

	for _, c := range cases {
		if got := NumCoefficients(c.order, c.typ); got != c.want {
			t.Errorf("NumCoefficients(%d, %v) = %d, want %d", c.order, c.typ, got, c.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	names := map[Type]string{
		LowPass:  "lowpass",
		HighPass: "highpass",
		BandPass: "bandpass",
		BandStop: "bandstop",
		Type(42): "unknown",
	}

	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(typ), got, want)
		}
	}
}

func TestTypeIsBand(t *testing.T) {
	for _, typ := range []Type{LowPass, HighPass} {
		if typ.IsBand() {
			t.Errorf("%v.IsBand() = true", typ)
		}
	}

	for _, typ := range []Type{BandPass, BandStop} {
		if !typ.IsBand() {
			t.Errorf("%v.IsBand() = false", typ)
		}
	}
}

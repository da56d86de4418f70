package design

// Type identifies the Butterworth filter response shape.
type Type int

const (
	LowPass Type = iota
	HighPass
	BandPass
	BandStop
)

// String returns the conventional name of the filter type.
func (t Type) String() string {
	switch t {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case BandPass:
		return "bandpass"
	case BandStop:
		return "bandstop"
	default:
		return "unknown"
	}
}

// IsBand reports whether the type has two edge frequencies. Band types
// double the pole count: each prototype pole maps to a pole pair.
func (t Type) IsBand() bool {
	return t == BandPass || t == BandStop
}

// NumCoefficients returns the coefficient count produced by a design of
// the given order and type: order+1 for single-edge types, 2*order+1
// for band types.
func NumCoefficients(order int, t Type) int {
	if t.IsBand() {
		return 2*order + 1
	}

	return order + 1
}

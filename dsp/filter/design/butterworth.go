package design

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/filter/direct"
)

// Errors returned by Butterworth for malformed configurations. These are
// design-time failures; the per-sample filter path never checks inputs.
var (
	ErrInvalidOrder      = errors.New("design: order must be at least 1")
	ErrInvalidSampleTime = errors.New("design: sample time must be positive and finite")
	ErrInvalidEdge       = errors.New("design: edge frequency must be positive and finite")
	ErrInvalidBand       = errors.New("design: upper band edge must be above the lower edge")
	ErrDegenerateDesign  = errors.New("design: degenerate design")
)

// imagResidualTol bounds the discarded imaginary part of the expanded
// polynomial coefficients, relative to the largest real coefficient.
// Conjugate-paired roots cancel imaginary parts up to round-off; anything
// above this indicates broken pole pairing rather than noise.
const imagResidualTol = 1e-8

// Butterworth designs a discrete-time Butterworth filter of the given
// order and type. sampleTime is the sampling interval in seconds. edge1
// is the cutoff for LowPass/HighPass or the lower band edge for band
// types, edge2 the upper band edge (ignored for single-edge types). All
// edges are angular frequencies in rad/s.
//
// The returned coefficients have unity gain at the type's reference
// frequency: DC for LowPass and BandStop, Nyquist for HighPass, and the
// band center for BandPass. The denominator is monic (leading term 1),
// which [direct.Coefficients.Validate] relies on.
func Butterworth(order int, typ Type, sampleTime, edge1, edge2 float64) (direct.Coefficients, error) {
	if order < 1 {
		return direct.Coefficients{}, ErrInvalidOrder
	}

	if sampleTime <= 0 || math.IsNaN(sampleTime) || math.IsInf(sampleTime, 0) {
		return direct.Coefficients{}, ErrInvalidSampleTime
	}

	if edge1 <= 0 || math.IsNaN(edge1) || math.IsInf(edge1, 0) {
		return direct.Coefficients{}, ErrInvalidEdge
	}

	if typ.IsBand() {
		if math.IsNaN(edge2) || math.IsInf(edge2, 0) || edge2 <= edge1 {
			return direct.Coefficients{}, ErrInvalidBand
		}
	}

	// Pre-warp the edges so the discrete response crosses where the
	// caller asked, compensating the bilinear transform's frequency
	// compression.
	wl := prewarp(edge1, sampleTime)
	wh := 0.0
	if typ.IsBand() {
		wh = prewarp(edge2, sampleTime)
	}

	zPoles := discretePoles(order, typ, sampleTime, wl, wh)
	zZeros := discreteZeros(order, typ, sampleTime, wl, wh)

	forcedAsc, forcedResid := expandPolynomial(zZeros)
	naturalAsc, naturalResid := expandPolynomial(zPoles)

	if forcedResid > imagResidualTol*math.Max(1, maxAbs(forcedAsc)) ||
		naturalResid > imagResidualTol*math.Max(1, maxAbs(naturalAsc)) {
		return direct.Coefficients{}, ErrDegenerateDesign
	}

	c := direct.Coefficients{
		Natural: reversed(naturalAsc),
		Forced:  reversed(forcedAsc),
	}

	mag := c.Magnitude(referenceFrequency(typ, sampleTime, wl, wh), sampleTime)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return direct.Coefficients{}, ErrDegenerateDesign
	}

	scale := 1 / mag
	for i := range c.Forced {
		c.Forced[i] *= scale
	}

	return c, nil
}

// prewarp maps an analog edge frequency onto the axis the bilinear
// transform will compress back to it: w' = (2/Ts)*tan(w*Ts/2).
func prewarp(w, sampleTime float64) float64 {
	return 2 / sampleTime * math.Tan(w*sampleTime/2)
}

// s2z carries a Laplace-domain pole or zero into the z-plane via the
// bilinear transform z = (1 + (Ts/2)s) / (1 - (Ts/2)s).
func s2z(s complex128, sampleTime float64) complex128 {
	half := complex(sampleTime/2, 0)
	return (1 + half*s) / (1 - half*s)
}

// prototypePoles places the order maximally-flat analog prototype poles
// uniformly on the left half of the unit circle.
func prototypePoles(order int) []complex128 {
	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi*(2*float64(k)+1)/(2*float64(order)) + math.Pi/2
		poles[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return poles
}

// discretePoles applies the analog frequency transform selected by typ
// to the prototype poles and maps the result into the z-plane. Band
// types double the pole count: the quadratic transform splits each
// prototype pole into a pair.
func discretePoles(order int, typ Type, sampleTime, wl, wh float64) []complex128 {
	proto := prototypePoles(order)

	var analog []complex128

	switch typ {
	case LowPass:
		analog = proto
		for i := range analog {
			analog[i] *= complex(wl, 0)
		}

	case HighPass:
		// Lowpass prototype through s -> wc/s.
		analog = proto
		for i := range analog {
			analog[i] = complex(wl, 0) / analog[i]
		}

	case BandPass:
		// s -> (s^2 + W0^2) / (B*s) with W0^2 = wl*wh, B = wh-wl.
		bandwidth := complex(wh-wl, 0)
		centerSq := complex(wh*wl, 0)

		analog = make([]complex128, 2*order)
		for i, p := range proto {
			pb := p * bandwidth
			root := cmplx.Sqrt(pb*pb - 4*centerSq)
			analog[2*i] = (pb + root) / 2
			analog[2*i+1] = (pb - root) / 2
		}

	case BandStop:
		// s -> B*s / (s^2 + W0^2).
		bandwidth := complex(wh-wl, 0)
		centerSq := complex(wh*wl, 0)

		analog = make([]complex128, 2*order)
		for i, p := range proto {
			root := cmplx.Sqrt(bandwidth*bandwidth + 4*p*centerSq)
			analog[2*i] = (bandwidth + root) / (2 * p)
			analog[2*i+1] = (bandwidth - root) / (2 * p)
		}
	}

	zPoles := make([]complex128, len(analog))
	for i, s := range analog {
		zPoles[i] = s2z(s, sampleTime)
	}

	return zPoles
}

// discreteZeros places the z-plane zeros structurally; Butterworth
// designs never need numerical root finding for the numerator.
func discreteZeros(order int, typ Type, sampleTime, wl, wh float64) []complex128 {
	zeros := make([]complex128, NumCoefficients(order, typ)-1)

	switch typ {
	case LowPass:
		for i := range zeros {
			zeros[i] = -1
		}

	case HighPass:
		for i := range zeros {
			zeros[i] = 1
		}

	case BandPass:
		for i := range zeros {
			if i%2 == 0 {
				zeros[i] = 1
			} else {
				zeros[i] = -1
			}
		}

	case BandStop:
		// Conjugate pairs on the unit circle at the notch frequency,
		// in rad/sample.
		omega0 := math.Sqrt(wl*wh) * sampleTime
		plus := complex(math.Cos(omega0), math.Sin(omega0))
		minus := cmplx.Conj(plus)

		for i := 0; i+1 < len(zeros); i += 2 {
			zeros[i] = plus
			zeros[i+1] = minus
		}
	}

	return zeros
}

// referenceFrequency returns the angular frequency (rad/s) where the
// finished filter is normalized to unity gain. Band frequencies use the
// pre-warped edges so the reference lands where the bilinear transform
// actually put the band center.
func referenceFrequency(typ Type, sampleTime, wl, wh float64) float64 {
	switch typ {
	case HighPass:
		return math.Pi / sampleTime
	case BandPass:
		return math.Sqrt(wl * wh)
	default: // LowPass, BandStop: DC
		return 0
	}
}

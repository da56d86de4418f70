// Package response measures the frequency response of designed filters
// by transforming their impulse response.
//
// The analytic [direct.Coefficients.Response] evaluates the transfer
// function at a single frequency; a Sampler instead runs a unit impulse
// through the actual runtime filter and FFTs the result, which measures
// the response of the difference equation as executed. Differences
// between the two indicate a broken design or an unstable filter, so
// the sampled response doubles as an independent verification path.
package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/core"
	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/filter/direct"
	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by Sampler construction and measurement.
var (
	ErrInvalidSampleTime = errors.New("response: sample time must be positive")
	ErrInvalidSize       = errors.New("response: size must be at least 2")
)

// Sampler measures magnitude responses on a fixed FFT grid. It owns an
// FFT plan and scratch buffers, so repeated measurements at the same
// size do not reallocate.
type Sampler struct {
	sampleTime float64
	size       int

	plan *algofft.Plan[complex128]

	timeBuf []complex128
	freqBuf []complex128
	re, im  []float64
}

// NewSampler creates a Sampler for filters running at the given sample
// time (seconds). size is the impulse-response length and FFT size; it
// is rounded up to the next power of two. Longer sizes resolve the grid
// more finely and reduce truncation error for slowly decaying filters.
func NewSampler(sampleTime float64, size int) (*Sampler, error) {
	if sampleTime <= 0 || math.IsNaN(sampleTime) || math.IsInf(sampleTime, 0) {
		return nil, ErrInvalidSampleTime
	}

	if size < 2 {
		return nil, ErrInvalidSize
	}

	size = nextPowerOf2(size)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	return &Sampler{
		sampleTime: sampleTime,
		size:       size,
		plan:       plan,
		timeBuf:    make([]complex128, size),
		freqBuf:    make([]complex128, size),
	}, nil
}

// Size returns the effective FFT size after power-of-two rounding.
func (s *Sampler) Size() int {
	return s.size
}

// Bins returns the number of frequency bins per measurement, covering
// DC through Nyquist inclusive.
func (s *Sampler) Bins() int {
	return s.size/2 + 1
}

// BinFrequency returns the angular frequency (rad/s) of bin i.
func (s *Sampler) BinFrequency(i int) float64 {
	return 2 * math.Pi * float64(i) / (float64(s.size) * s.sampleTime)
}

// Magnitudes measures |H| at each bin from DC to Nyquist by feeding a
// unit impulse through a runtime filter built from c and transforming
// the truncated impulse response.
func (s *Sampler) Magnitudes(c direct.Coefficients) ([]float64, error) {
	f, err := direct.New[float64](c)
	if err != nil {
		return nil, err
	}

	ir := f.ImpulseResponse(s.size)
	for i, v := range ir {
		s.timeBuf[i] = complex(v, 0)
	}

	if err := s.plan.Forward(s.freqBuf, s.timeBuf); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := s.Bins()
	s.re = core.EnsureLen(s.re, bins)
	s.im = core.EnsureLen(s.im, bins)

	for i := range bins {
		s.re[i] = real(s.freqBuf[i])
		s.im[i] = imag(s.freqBuf[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, s.re, s.im)

	return out, nil
}

// MagnitudesDB measures the response in dB (20*log10 |H|).
func (s *Sampler) MagnitudesDB(c direct.Coefficients) ([]float64, error) {
	mags, err := s.Magnitudes(c)
	if err != nil {
		return nil, err
	}

	for i, m := range mags {
		mags[i] = core.LinearToDB(m)
	}

	return mags, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}

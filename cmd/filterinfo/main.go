// Command filterinfo designs a discrete Butterworth filter and prints
// its coefficients and magnitude response.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -order 2 -type lowpass -ts 0.001 -edge 1000
//	filterinfo -order 3 -type bandpass -ts 0.0001 -edge 500 -edge2 2000
//	filterinfo -order 1 -type highpass -ts 0.001 -edge 800 -rows 16
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/core"
	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/filter/design"
	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/measure/response"
)

var filterTypes = map[string]design.Type{
	"lowpass":  design.LowPass,
	"highpass": design.HighPass,
	"bandpass": design.BandPass,
	"bandstop": design.BandStop,
}

func main() {
	order := flag.Int("order", 2, "filter order")
	typeName := flag.String("type", "lowpass", "filter type: lowpass, highpass, bandpass, bandstop")
	sampleTime := flag.Float64("ts", 0.001, "sampling interval in seconds")
	edge := flag.Float64("edge", 1000, "cutoff or lower band edge in rad/s")
	edge2 := flag.Float64("edge2", 0, "upper band edge in rad/s (band types only)")
	fftSize := flag.Int("fft", 4096, "FFT size for the sampled response")
	rows := flag.Int("rows", 12, "number of response rows to print")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a discrete Butterworth filter and prints its coefficients\n")
		fmt.Fprintf(os.Stderr, "and magnitude response (analytic and FFT-sampled).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	typ, ok := filterTypes[*typeName]
	if !ok {
		fmt.Fprintf(os.Stderr, "filterinfo: unknown filter type %q\n", *typeName)
		os.Exit(2)
	}

	coeffs, err := design.Butterworth(*order, typ, *sampleTime, *edge, *edge2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filterinfo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s order=%d ts=%gs edge=%g", typ, *order, *sampleTime, *edge)
	if typ.IsBand() {
		fmt.Printf(" edge2=%g", *edge2)
	}
	fmt.Printf(" coefficients=%d\n\n", coeffs.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "delay\tnatural (a)\tforced (b)")
	for i := range coeffs.Natural {
		fmt.Fprintf(w, "z^-%d\t%+.9e\t%+.9e\n", i, coeffs.Natural[i], coeffs.Forced[i])
	}
	w.Flush()

	sampler, err := response.NewSampler(*sampleTime, *fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filterinfo: %v\n", err)
		os.Exit(1)
	}

	sampled, err := sampler.MagnitudesDB(coeffs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filterinfo: %v\n", err)
		os.Exit(1)
	}

	if *rows < 2 {
		*rows = 2
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "freq (rad/s)\tanalytic (dB)\tsampled (dB)")

	bins := sampler.Bins()
	for r := range *rows {
		bin := r * (bins - 1) / (*rows - 1)
		freq := sampler.BinFrequency(bin)
		analytic := core.LinearToDB(coeffs.Magnitude(freq, *sampleTime))
		fmt.Fprintf(w, "%.1f\t%.2f\t%.2f\n", freq, analytic, sampled[bin])
	}
	w.Flush()
}

package direct_test

import (
	"fmt"

	"github.com/AidenPrevey/Laser-Cleaning-Embedded-Code/dsp/filter/direct"
)

func ExampleFilter_ProcessSample() {
	// First-order lowpass with unity DC gain and pole 0.5.
	coeffs := direct.Coefficients{
		Natural: []float64{1, -0.5},
		Forced:  []float64{0.25, 0.25},
	}

	f, err := direct.New[float64](coeffs)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 1, 1} {
		fmt.Printf("%.4f\n", f.ProcessSample(x))
	}
	// Output:
	// 0.2500
	// 0.6250
	// 0.8125
}

func ExampleFilter_Fill() {
	coeffs := direct.Coefficients{
		Natural: []float64{1, -0.5},
		Forced:  []float64{0.25, 0.25},
	}

	f, err := direct.New[float64](coeffs)
	if err != nil {
		panic(err)
	}

	// Pre-seed steady state for a known DC input: no startup transient.
	f.Fill(2)
	fmt.Printf("%.4f\n", f.ProcessSample(2))
	// Output:
	// 2.0000
}

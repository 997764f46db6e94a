package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-gsp/gsp/filter"
)

func ExampleHeat() {
	k := filter.Heat(2, 5)
	fmt.Printf("h(0)=%.2f h(lmax)=%.4f\n", k(0), k(2))

	// Output:
	// h(0)=1.00 h(lmax)=0.0067
}

func ExampleItersine() {
	kernels, _ := filter.Itersine(2, 4)

	sum := 0.0
	for _, k := range kernels {
		v := k(0.75)
		sum += v * v
	}
	fmt.Printf("bands=%d sum_sq=%.3f\n", len(kernels), sum)

	// Output:
	// bands=4 sum_sq=1.000
}

func ExampleChebyCoeffs() {
	// A linear kernel on [0, 2] has the exact expansion 1 + T1.
	coeffs, _ := filter.ChebyCoeffs(func(lambda float64) float64 { return lambda }, 3, 2)
	fmt.Printf("c0=%.1f c1=%.1f\n", coeffs[0], coeffs[1])

	// Output:
	// c0=2.0 c1=1.0
}

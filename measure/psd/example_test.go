package psd_test

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-gsp/gsp/graph"
	"github.com/cwbudde/algo-gsp/measure/psd"
)

func ExampleEstimate() {
	g, _ := graph.Ring(100, graph.Combinatorial)

	impulse := make([]float64, 100)
	impulse[0] = 1

	res, _ := psd.Estimate(g, psd.Single(impulse),
		psd.WithPoints(10),
		psd.WithProbes(20),
		psd.WithRand(rand.New(rand.NewSource(42))),
	)

	fmt.Printf("bands=%d lambda0=%.0f\n", len(res.PSD), res.Spectrum[0])

	// Output:
	// bands=10 lambda0=0
}

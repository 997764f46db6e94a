package psd_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-gsp/gsp/graph"
	"github.com/cwbudde/algo-gsp/measure/psd"
)

func BenchmarkEstimate(b *testing.B) {
	cases := []struct {
		nodes, points, probes int
	}{
		{256, 10, 5},
		{1024, 30, 5},
		{4096, 30, 10},
	}

	for _, tc := range cases {
		g, err := graph.Ring(tc.nodes, graph.Combinatorial)
		if err != nil {
			b.Fatalf("ring graph: %v", err)
		}
		x := noiseSignal(tc.nodes, 1)

		name := fmt.Sprintf("n=%d/points=%d/probes=%d", tc.nodes, tc.points, tc.probes)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				_, err := psd.Estimate(g, psd.Single(x),
					psd.WithPoints(tc.points),
					psd.WithProbes(tc.probes),
					psd.WithRand(rand.New(rand.NewSource(1))),
				)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package graph_test

import (
	"fmt"

	"github.com/cwbudde/algo-gsp/gsp/graph"
)

func ExampleRing() {
	g, _ := graph.Ring(16, graph.Combinatorial)
	fmt.Printf("nodes=%d edges=%d\n", g.NumNodes(), g.NumEdges())

	// Output:
	// nodes=16 edges=16
}

func ExampleGraph_Spectrum() {
	g, _ := graph.Path(3, graph.Combinatorial)
	eigs, _ := g.Spectrum()
	fmt.Printf("%.0f %.0f %.0f\n", eigs[0], eigs[1], eigs[2])

	// Output:
	// 0 1 3
}

func ExampleGraph_LapMul() {
	g, _ := graph.FromEdges(3, []graph.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 0, Weight: 1},
	}, graph.Combinatorial)

	x := []float64{1, 2, 3}
	dst := make([]float64, 3)
	g.LapMul(dst, x)
	fmt.Printf("%.0f %.0f %.0f\n", dst[0], dst[1], dst[2])

	// Output:
	// -3 0 3
}

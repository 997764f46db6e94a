package graph

import "github.com/cwbudde/algo-gsp/gsp/filter"

// FilterBatch filters every column of batch through every kernel using a
// degree-order Chebyshev approximation of the kernels on the graph's
// spectrum. The result is indexed [kernel][column][node].
//
// It is a thin front for [filter.Apply] so a *Graph satisfies the operator
// seam of measure/psd directly.
func (g *Graph) FilterBatch(kernels []filter.Kernel, order int, batch [][]float64) ([][][]float64, error) {
	return filter.Apply(g, kernels, order, batch)
}

// Package graph provides weighted undirected graphs viewed as Laplacian
// operators for spectral signal processing.
//
// A [Graph] stores its adjacency in compressed sparse row form and exposes
// the graph Laplacian as a matrix-vector product, which is all the Chebyshev
// filtering machinery in gsp/filter needs. Two Laplacian normalizations are
// supported:
//
//	Combinatorial:  L = D - W
//	Normalized:     L = I - D^{-1/2} W D^{-1/2}
//
// The upper end of the Laplacian spectrum is estimated with power iteration
// ([Graph.MaxEigenvalue]) and slightly inflated so that polynomial filters
// designed on [0, lmax] cover the true spectrum. For small graphs the exact
// eigenvalues are available through [Graph.Spectrum], backed by a dense
// symmetric eigendecomposition.
//
// Basic usage:
//
//	g, _ := graph.Ring(64, graph.Combinatorial)
//	fmt.Printf("nodes=%d lmax=%.3f\n", g.NumNodes(), g.MaxEigenvalue())
package graph

// Package filter provides spectral filter kernels for graph signals and a
// Chebyshev engine that applies them without eigendecomposition.
//
// A [Kernel] is a function of the Laplacian eigenvalue. Filtering a signal x
// by kernel h means computing h(L)·x, where h acts on the eigenvalues of the
// Laplacian L. Doing that exactly requires the full Fourier basis of the
// graph; instead [Apply] expands each kernel in Chebyshev polynomials on
// [0, lmax] and evaluates the expansion through repeated sparse
// matrix-vector products, the standard trick for large graphs.
//
// Two kernel families are built in:
//
//   - [Heat] — the heat diffusion kernel exp(-tau·λ/lmax), a spectral
//     stand-in for Gaussian smoothing on the graph.
//   - [Itersine] — a partition-of-unity bank of overlapping band-pass
//     kernels covering [0, lmax]; the squared responses of the bank sum to
//     one at every point of the spectrum, which makes it the natural
//     analysis bank for energy decompositions.
//
// Basic usage:
//
//	g, _ := graph.Ring(256, graph.Combinatorial)
//	smooth := filter.Heat(g.MaxEigenvalue(), 10)
//	out, err := filter.Apply(g, []filter.Kernel{smooth}, 30, [][]float64{x})
package filter

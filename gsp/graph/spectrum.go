package graph

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrEigenFailed is returned when the dense eigendecomposition does not
// converge.
var ErrEigenFailed = errors.New("graph: eigendecomposition failed")

// Spectrum returns all Laplacian eigenvalues in ascending order.
//
// The Laplacian is densified and factorized with a symmetric
// eigendecomposition, so this is only practical for small graphs (thousands
// of nodes); spectral filtering itself never needs it. It is useful as a
// ground-truth reference in tests and diagnostics.
func (g *Graph) Spectrum() ([]float64, error) {
	l := mat.NewSymDense(g.n, nil)

	for i := 0; i < g.n; i++ {
		l.SetSym(i, i, g.diag[i])
		for k := g.rowPtr[i]; k < g.rowPtr[i+1]; k++ {
			// Repeated edges hold separate CSR entries; accumulate them.
			if j := g.colIdx[k]; j > i {
				l.SetSym(i, j, l.At(i, j)-g.offW[k])
			}
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(l, false) {
		return nil, ErrEigenFailed
	}

	vals := eig.Values(nil)

	// Rounding can push the zero eigenvalue slightly negative.
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
	}

	return vals, nil
}

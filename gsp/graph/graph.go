package graph

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Errors returned by graph constructors.
var (
	ErrNoNodes    = errors.New("graph: node count must be positive")
	ErrEdgeBounds = errors.New("graph: edge endpoint out of range")
	ErrSelfLoop   = errors.New("graph: self-loops are not supported")
	ErrBadWeight  = errors.New("graph: edge weight must be positive and finite")
)

// LaplacianKind selects the Laplacian normalization used by a graph.
type LaplacianKind int

const (
	// Combinatorial selects L = D - W.
	Combinatorial LaplacianKind = iota

	// Normalized selects L = I - D^{-1/2} W D^{-1/2}. Its spectrum is
	// contained in [0, 2].
	Normalized
)

// Edge is a single weighted undirected edge between nodes U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// Graph is an immutable weighted undirected graph exposed as a Laplacian
// operator. Adjacency is stored in compressed sparse row form; repeated
// edges between the same node pair accumulate their weights.
type Graph struct {
	n      int
	rowPtr []int
	colIdx []int
	diag   []float64 // Laplacian diagonal
	offW   []float64 // negated off-diagonal magnitudes (positive values)
	degree []float64
	kind   LaplacianKind

	lmaxOnce sync.Once
	lmax     float64
}

// FromEdges builds a graph with n nodes from a list of undirected edges.
// Edge endpoints must lie in [0, n), weights must be positive and finite,
// and self-loops are rejected. An empty edge list yields a graph of
// isolated nodes (a valid, if dull, Laplacian).
func FromEdges(n int, edges []Edge, kind LaplacianKind) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoNodes
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: (%d, %d) with n=%d", ErrEdgeBounds, e.U, e.V, n)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: node %d", ErrSelfLoop, e.U)
		}
		if !(e.Weight > 0) || math.IsInf(e.Weight, 1) {
			return nil, fmt.Errorf("%w: (%d, %d) weight %v", ErrBadWeight, e.U, e.V, e.Weight)
		}
	}

	// Count entries per row; every edge appears in both endpoint rows.
	counts := make([]int, n)
	for _, e := range edges {
		counts[e.U]++
		counts[e.V]++
	}

	rowPtr := make([]int, n+1)
	for i := 0; i < n; i++ {
		rowPtr[i+1] = rowPtr[i] + counts[i]
	}

	nnz := rowPtr[n]
	colIdx := make([]int, nnz)
	weights := make([]float64, nnz)
	next := make([]int, n)
	copy(next, rowPtr[:n])

	degree := make([]float64, n)
	for _, e := range edges {
		colIdx[next[e.U]] = e.V
		weights[next[e.U]] = e.Weight
		next[e.U]++

		colIdx[next[e.V]] = e.U
		weights[next[e.V]] = e.Weight
		next[e.V]++

		degree[e.U] += e.Weight
		degree[e.V] += e.Weight
	}

	g := &Graph{
		n:      n,
		rowPtr: rowPtr,
		colIdx: colIdx,
		degree: degree,
		kind:   kind,
	}

	// Precompute Laplacian entries so LapMul is a single fused pass.
	g.diag = make([]float64, n)
	g.offW = make([]float64, nnz)

	switch kind {
	case Normalized:
		invSqrt := make([]float64, n)
		for i, d := range degree {
			if d > 0 {
				invSqrt[i] = 1 / math.Sqrt(d)
				g.diag[i] = 1
			}
		}
		for i := 0; i < n; i++ {
			for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
				g.offW[k] = weights[k] * invSqrt[i] * invSqrt[colIdx[k]]
			}
		}
	default:
		copy(g.diag, degree)
		copy(g.offW, weights)
	}

	return g, nil
}

// Ring builds a cycle graph of n nodes with unit edge weights.
// n must be at least 3.
func Ring(n int, kind LaplacianKind) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: ring needs at least 3 nodes, got %d", ErrNoNodes, n)
	}

	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{U: i, V: (i + 1) % n, Weight: 1}
	}

	return FromEdges(n, edges, kind)
}

// Path builds a chain graph of n nodes with unit edge weights.
// n must be at least 2.
func Path(n int, kind LaplacianKind) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs at least 2 nodes, got %d", ErrNoNodes, n)
	}

	edges := make([]Edge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = Edge{U: i, V: i + 1, Weight: 1}
	}

	return FromEdges(n, edges, kind)
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return len(g.colIdx) / 2 }

// Kind returns the Laplacian normalization the graph was built with.
func (g *Graph) Kind() LaplacianKind { return g.kind }

// Degree returns the weighted degree of node i.
func (g *Graph) Degree(i int) float64 { return g.degree[i] }

// LapMul computes dst = L * src for the graph Laplacian.
// Both slices must have length NumNodes; dst and src must not alias.
func (g *Graph) LapMul(dst, src []float64) {
	for i := 0; i < g.n; i++ {
		acc := g.diag[i] * src[i]
		for k := g.rowPtr[i]; k < g.rowPtr[i+1]; k++ {
			acc -= g.offW[k] * src[g.colIdx[k]]
		}
		dst[i] = acc
	}
}

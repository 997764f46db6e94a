package filter

import (
	"errors"
	"math"
)

// Errors returned by kernel constructors and the Chebyshev engine.
var (
	ErrInvalidLmax     = errors.New("filter: spectral bound must be positive and finite")
	ErrTooFewBands     = errors.New("filter: band count must be at least 2")
	ErrInvalidOrder    = errors.New("filter: polynomial order must be positive")
	ErrNoKernels       = errors.New("filter: no kernels")
	ErrEmptyBatch      = errors.New("filter: empty signal batch")
	ErrLengthMismatch  = errors.New("filter: signal length does not match node count")
	ErrInvalidOperator = errors.New("filter: operator has no nodes or no spectral bound")
)

// Kernel is a spectral filter kernel: a real function evaluated on
// Laplacian eigenvalues.
type Kernel func(lambda float64) float64

// Operator is the Laplacian seam the Chebyshev engine runs against.
// *graph.Graph satisfies it.
type Operator interface {
	// NumNodes returns the signal length the operator acts on.
	NumNodes() int

	// MaxEigenvalue returns an upper bound on the operator's spectrum.
	MaxEigenvalue() float64

	// LapMul computes dst = L * src; dst and src must not alias.
	LapMul(dst, src []float64)
}

// Heat returns the heat diffusion kernel
//
//	h(λ) = exp(-tau · λ / lmax)
//
// on the spectrum [0, lmax]. Larger tau diffuses further, i.e. smooths more.
// lmax must be positive.
func Heat(lmax, tau float64) Kernel {
	return func(lambda float64) float64 {
		return math.Exp(-tau * lambda / lmax)
	}
}

// Itersine returns a partition-of-unity bank of overlapping band-pass
// kernels spanning [0, lmax] with overlap factor 2. Band i (0-based) is
// centered at i·lmax/(bands-1), so the band centers form a uniform grid
// over the spectrum. The squared responses of the bank sum to 1 on
// [0, lmax]:
//
//	Σ_i g_i(λ)² = 1
//
// bands must be at least 2.
func Itersine(lmax float64, bands int) ([]Kernel, error) {
	if bands < 2 {
		return nil, ErrTooFewBands
	}
	if !(lmax > 0) || math.IsInf(lmax, 1) {
		return nil, ErrInvalidLmax
	}

	const overlap = 2.0
	scale := lmax * overlap / (float64(bands) - overlap + 1)
	gain := math.Sqrt(2 / overlap)

	kernels := make([]Kernel, bands)
	for i := range kernels {
		center := float64(i) / overlap
		kernels[i] = func(lambda float64) float64 {
			t := lambda/scale - center
			if t < -0.5 || t > 0.5 {
				return 0
			}
			c := math.Cos(math.Pi * t)
			return gain * math.Sin(0.5*math.Pi*c*c)
		}
	}

	return kernels, nil
}

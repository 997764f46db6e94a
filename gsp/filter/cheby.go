package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// minChebySamples is the smallest number of Chebyshev sample points used
// when computing expansion coefficients. Oversampling beyond order+1 points
// costs almost nothing through the FFT and reduces aliasing of the sampled
// kernel.
const minChebySamples = 16

// ChebyCoeffs returns the Chebyshev expansion coefficients c_0..c_order of
// kernel k on the interval [0, lmax], in the convention
//
//	k(λ) ≈ c_0/2 + Σ_{j=1..order} c_j · T_j(2λ/lmax - 1)
//
// The kernel is sampled at Chebyshev points and the coefficients are
// recovered with a DCT-II, evaluated through a length-2M FFT with M rounded
// up to a power of two.
func ChebyCoeffs(k Kernel, order int, lmax float64) ([]float64, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(lmax > 0) || math.IsInf(lmax, 1) {
		return nil, ErrInvalidLmax
	}

	m := nextPowerOf2(order + 1)
	if m < minChebySamples {
		m = minChebySamples
	}

	plan, err := algofft.NewPlan64(2 * m)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create FFT plan: %w", err)
	}

	// Sample k at the Chebyshev points of [0, lmax] and mirror the samples,
	// which turns the length-2M FFT below into a DCT-II of length M.
	buf := make([]complex128, 2*m)
	for j := 0; j < m; j++ {
		theta := math.Pi * (float64(j) + 0.5) / float64(m)
		lambda := (math.Cos(theta) + 1) * lmax / 2
		s := complex(k(lambda), 0)
		buf[j] = s
		buf[2*m-1-j] = s
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("filter: forward FFT failed: %w", err)
	}

	coeffs := make([]float64, order+1)
	for j := range coeffs {
		twiddle := cmplx.Exp(complex(0, -math.Pi*float64(j)/float64(2*m)))
		coeffs[j] = real(twiddle*buf[j]) / float64(m)
	}

	return coeffs, nil
}

// Apply filters every column of batch through every kernel using a
// degree-order Chebyshev approximation on [0, op.MaxEigenvalue()].
//
// batch holds one or more signals as columns of length op.NumNodes(). The
// result is indexed [kernel][column][node]. The three-term recurrence runs
// once per column and is shared by all kernels, so filtering a bank costs
// the same Laplacian products as filtering a single kernel.
func Apply(op Operator, kernels []Kernel, order int, batch [][]float64) ([][][]float64, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	n := op.NumNodes()
	lmax := op.MaxEigenvalue()
	if n <= 0 || !(lmax > 0) {
		return nil, ErrInvalidOperator
	}

	for c, col := range batch {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has length %d, want %d",
				ErrLengthMismatch, c, len(col), n)
		}
	}

	coeffs := make([][]float64, len(kernels))
	for f, k := range kernels {
		c, err := ChebyCoeffs(k, order, lmax)
		if err != nil {
			return nil, err
		}
		coeffs[f] = c
	}

	out := make([][][]float64, len(kernels))
	for f := range out {
		out[f] = make([][]float64, len(batch))
		for c := range out[f] {
			out[f][c] = make([]float64, n)
		}
	}

	// Shifted-Laplacian recurrence on [-1, 1]: with a = lmax/2,
	//
	//	T_0 = x
	//	T_1 = (L·x - a·x)/a
	//	T_{j+1} = 2·(L·T_j - a·T_j)/a - T_{j-1}
	a := lmax / 2
	tPrev := make([]float64, n)
	tCur := make([]float64, n)
	tNext := make([]float64, n)
	scratch := make([]float64, n)

	for c, x := range batch {
		copy(tPrev, x)

		op.LapMul(scratch, tPrev)
		for i := 0; i < n; i++ {
			tCur[i] = scratch[i]/a - tPrev[i]
		}

		for f := range kernels {
			dst := out[f][c]
			vecmath.ScaleBlock(dst, tPrev, coeffs[f][0]/2)
			for i := 0; i < n; i++ {
				dst[i] += coeffs[f][1] * tCur[i]
			}
		}

		for j := 2; j <= order; j++ {
			op.LapMul(scratch, tCur)
			for i := 0; i < n; i++ {
				tNext[i] = 2*(scratch[i]/a-tCur[i]) - tPrev[i]
			}

			for f := range kernels {
				dst := out[f][c]
				cf := coeffs[f][j]
				if cf == 0 {
					continue
				}
				for i := 0; i < n; i++ {
					dst[i] += cf * tNext[i]
				}
			}

			tPrev, tCur, tNext = tCur, tNext, tPrev
		}
	}

	return out, nil
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

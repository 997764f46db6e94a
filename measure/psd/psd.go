package psd

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gsp/gsp/filter"
)

// Errors returned by Estimate.
var (
	ErrNilOperator       = errors.New("psd: nil operator")
	ErrEmptySignal       = errors.New("psd: empty signal batch")
	ErrDimensionMismatch = errors.New("psd: signal length does not match node count")
	ErrInvalidPoints     = errors.New("psd: point count must be at least 2")
	ErrInvalidProbes     = errors.New("psd: probe count must be at least 1")
	ErrInvalidOrder      = errors.New("psd: polynomial order must not be negative")
	ErrInvalidLmax       = errors.New("psd: operator reports a non-positive spectral bound")
)

// DegenerateBandError reports bands whose reference energy estimate came out
// exactly zero, leaving the density ratio undefined there. The bands it
// names carry NaN in the returned PSD; every other band is valid.
type DegenerateBandError struct {
	Bands []int
}

func (e *DegenerateBandError) Error() string {
	return fmt.Sprintf("psd: zero reference energy in bands %v", e.Bands)
}

// Operator is the spectral graph capability the estimator runs against.
// *graph.Graph satisfies it; tests may inject fakes.
type Operator interface {
	// NumNodes returns the number of graph nodes, i.e. the signal length.
	NumNodes() int

	// MaxEigenvalue returns an upper bound on the Laplacian spectrum.
	MaxEigenvalue() float64

	// FilterBatch filters every column of batch through every kernel with a
	// degree-order polynomial approximation; result indexed
	// [kernel][column][node].
	FilterBatch(kernels []filter.Kernel, order int, batch [][]float64) ([][][]float64, error)
}

// Result holds an estimated power spectral density.
type Result struct {
	// Spectrum holds the band centers, evenly spaced from 0 to the
	// operator's spectral bound inclusive.
	Spectrum []float64

	// PSD holds the estimated spectral energy density at each band center.
	// Entries are non-negative; a degenerate band is NaN (see
	// [DegenerateBandError]).
	PSD []float64
}

// Single wraps one signal vector as a width-1 batch.
func Single(x []float64) [][]float64 {
	return [][]float64{x}
}

// Estimate computes the power spectral density of a signal batch on the
// spectrum of op.
//
// batch holds one or more signals as columns of length op.NumNodes(); for a
// batch the per-band energies are averaged over the columns. The itersine
// analysis bank, the linear band grid and the probe normalization follow
// the configuration in [Config].
//
// On success the returned error is nil. Invalid parameters and mismatched
// dimensions fail the whole call. A zero probe reference energy in some
// band is reported as partial success: the result is returned with NaN at
// the affected bands together with a *[DegenerateBandError] naming them.
func Estimate(op Operator, batch [][]float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if op == nil {
		return Result{}, ErrNilOperator
	}
	if cfg.Points < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidPoints, cfg.Points)
	}
	if cfg.Probes < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidProbes, cfg.Probes)
	}
	if cfg.Order < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidOrder, cfg.Order)
	}
	if len(batch) == 0 {
		return Result{}, ErrEmptySignal
	}

	n := op.NumNodes()
	for c, col := range batch {
		if len(col) != n {
			return Result{}, fmt.Errorf("%w: column %d has length %d, want %d",
				ErrDimensionMismatch, c, len(col), n)
		}
	}

	lmax := op.MaxEigenvalue()
	if !(lmax > 0) {
		return Result{}, ErrInvalidLmax
	}

	kernels, err := filter.Itersine(lmax, cfg.Points)
	if err != nil {
		return Result{}, err
	}

	order := cfg.Order
	if order == 0 {
		order = 2 * cfg.Points
	}

	spectrum := make([]float64, cfg.Points)
	for i := range spectrum {
		spectrum[i] = float64(i) * lmax / float64(cfg.Points-1)
	}

	signalEnergy, err := bandEnergies(op, kernels, order, batch)
	if err != nil {
		return Result{}, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	probes := rademacherBatch(rng, n, cfg.Probes)
	referenceEnergy, err := bandEnergies(op, kernels, order, probes)
	if err != nil {
		return Result{}, err
	}

	curve := make([]float64, cfg.Points)
	var degenerate []int
	for b := range curve {
		if referenceEnergy[b] == 0 {
			curve[b] = math.NaN()
			degenerate = append(degenerate, b)
			continue
		}
		curve[b] = signalEnergy[b] / referenceEnergy[b]
	}

	res := Result{Spectrum: spectrum, PSD: curve}
	if degenerate != nil {
		return res, &DegenerateBandError{Bands: degenerate}
	}

	return res, nil
}

// bandEnergies filters batch through the bank and returns, per band, the sum
// of squares over nodes averaged over the batch columns.
func bandEnergies(op Operator, kernels []filter.Kernel, order int, batch [][]float64) ([]float64, error) {
	filtered, err := op.FilterBatch(kernels, order, batch)
	if err != nil {
		return nil, err
	}

	energies := make([]float64, len(kernels))
	for b, cols := range filtered {
		sum := 0.0
		for _, col := range cols {
			sum += vecmath.DotProduct(col, col)
		}
		energies[b] = sum / float64(len(cols))
	}

	return energies, nil
}

// rademacherBatch draws a batch of probes columns with i.i.d. ±1 entries.
func rademacherBatch(rng *rand.Rand, n, probes int) [][]float64 {
	batch := make([][]float64, probes)
	for c := range batch {
		col := make([]float64, n)
		for i := range col {
			col[i] = float64(2*rng.Intn(2) - 1)
		}
		batch[c] = col
	}

	return batch
}

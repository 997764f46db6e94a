// Package psd estimates the power spectral density of graph signals without
// eigendecomposition.
//
// The estimator splits the Laplacian spectrum [0, lmax] into overlapping
// itersine bands, measures the signal's energy in each band through
// Chebyshev-approximated filtering, and normalizes each band by the energy
// that random ±1 probe signals leave in it. The probe energies are a
// stochastic trace estimate of the number of Laplacian eigenvalues per
// band, so the normalization divides out the graph's uneven eigenvalue
// density and the result is comparable across bands.
//
// All randomness flows through an injected generator, so runs are
// reproducible:
//
//	g, _ := graph.Ring(100, graph.Combinatorial)
//	res, err := psd.Estimate(g, psd.Single(x),
//		psd.WithPoints(30),
//		psd.WithProbes(10),
//		psd.WithRand(rand.New(rand.NewSource(42))))
//
// res.Spectrum holds the band centers from 0 to lmax and res.PSD the
// estimated density at each center.
package psd

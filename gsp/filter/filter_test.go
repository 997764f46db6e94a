package filter

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHeatKernelShape(t *testing.T) {
	k := Heat(2, 10)

	if !almostEqual(k(0), 1, tolerance) {
		t.Fatalf("heat kernel at 0: expected 1, got %f", k(0))
	}

	if k(2) >= k(1) || k(1) >= k(0) {
		t.Fatalf("heat kernel not decreasing: %f %f %f", k(0), k(1), k(2))
	}

	if !almostEqual(k(2), math.Exp(-10), tolerance) {
		t.Fatalf("heat kernel at lmax: expected exp(-tau), got %g", k(2))
	}
}

func TestItersineValidation(t *testing.T) {
	if _, err := Itersine(2, 1); !errors.Is(err, ErrTooFewBands) {
		t.Fatalf("expected ErrTooFewBands, got %v", err)
	}
	if _, err := Itersine(0, 8); !errors.Is(err, ErrInvalidLmax) {
		t.Fatalf("expected ErrInvalidLmax for lmax=0, got %v", err)
	}
	if _, err := Itersine(-1, 8); !errors.Is(err, ErrInvalidLmax) {
		t.Fatalf("expected ErrInvalidLmax for lmax<0, got %v", err)
	}
	if _, err := Itersine(math.NaN(), 8); !errors.Is(err, ErrInvalidLmax) {
		t.Fatalf("expected ErrInvalidLmax for NaN, got %v", err)
	}
}

func TestItersinePartitionOfUnity(t *testing.T) {
	const lmax = 2.0

	for _, bands := range []int{2, 5, 10, 31} {
		kernels, err := Itersine(lmax, bands)
		if err != nil {
			t.Fatalf("bands=%d: unexpected error: %v", bands, err)
		}
		if len(kernels) != bands {
			t.Fatalf("bands=%d: expected %d kernels, got %d", bands, bands, len(kernels))
		}

		// Sum of squared responses must be 1 across the whole spectrum.
		for s := 0; s <= 200; s++ {
			lambda := lmax * float64(s) / 200
			sum := 0.0
			for _, k := range kernels {
				v := k(lambda)
				sum += v * v
			}
			if !almostEqual(sum, 1, 1e-9) {
				t.Fatalf("bands=%d lambda=%f: squared responses sum to %f, want 1",
					bands, lambda, sum)
			}
		}
	}
}

func TestItersineBandCenters(t *testing.T) {
	const lmax = 4.0
	const bands = 9

	kernels, err := Itersine(lmax, bands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Band i peaks at i*lmax/(bands-1) with unit response.
	for i, k := range kernels {
		center := float64(i) * lmax / float64(bands-1)
		if !almostEqual(k(center), 1, 1e-9) {
			t.Fatalf("band %d: response at center %f is %f, want 1", i, center, k(center))
		}
	}
}

func TestChebyCoeffsConstant(t *testing.T) {
	coeffs, err := ChebyCoeffs(func(float64) float64 { return 1 }, 8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(coeffs) != 9 {
		t.Fatalf("expected 9 coefficients, got %d", len(coeffs))
	}

	// k(lambda) = 1 = c0/2 with all higher terms zero.
	if !almostEqual(coeffs[0], 2, 1e-12) {
		t.Fatalf("c0: expected 2, got %g", coeffs[0])
	}
	for j := 1; j < len(coeffs); j++ {
		if !almostEqual(coeffs[j], 0, 1e-12) {
			t.Fatalf("c%d: expected 0, got %g", j, coeffs[j])
		}
	}
}

func TestChebyCoeffsLinear(t *testing.T) {
	const lmax = 2.0

	coeffs, err := ChebyCoeffs(func(lambda float64) float64 { return lambda }, 6, lmax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// lambda = lmax/2 + (lmax/2)*T1 on [0, lmax], so c0 = lmax, c1 = lmax/2.
	if !almostEqual(coeffs[0], lmax, 1e-12) {
		t.Fatalf("c0: expected %f, got %g", lmax, coeffs[0])
	}
	if !almostEqual(coeffs[1], lmax/2, 1e-12) {
		t.Fatalf("c1: expected %f, got %g", lmax/2, coeffs[1])
	}
	for j := 2; j < len(coeffs); j++ {
		if !almostEqual(coeffs[j], 0, 1e-12) {
			t.Fatalf("c%d: expected 0, got %g", j, coeffs[j])
		}
	}
}

func TestChebyCoeffsHeatAccuracy(t *testing.T) {
	const lmax = 4.0
	k := Heat(lmax, 5)

	coeffs, err := ChebyCoeffs(k, 40, lmax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Evaluate the expansion directly and compare against the kernel.
	for s := 0; s <= 100; s++ {
		lambda := lmax * float64(s) / 100
		y := 2*lambda/lmax - 1

		// Clenshaw-free evaluation via the cosine form of T_j.
		theta := math.Acos(math.Max(-1, math.Min(1, y)))
		sum := coeffs[0] / 2
		for j := 1; j < len(coeffs); j++ {
			sum += coeffs[j] * math.Cos(float64(j)*theta)
		}

		if !almostEqual(sum, k(lambda), 1e-8) {
			t.Fatalf("lambda=%f: expansion %g vs kernel %g", lambda, sum, k(lambda))
		}
	}
}

func TestChebyCoeffsValidation(t *testing.T) {
	if _, err := ChebyCoeffs(Heat(2, 1), 0, 2); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
	if _, err := ChebyCoeffs(Heat(2, 1), 4, 0); !errors.Is(err, ErrInvalidLmax) {
		t.Fatalf("expected ErrInvalidLmax, got %v", err)
	}
}

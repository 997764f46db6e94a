// Package spectral computes shape descriptors over an estimated graph power
// spectral density.
//
// The input is a PSD curve as produced by measure/psd: one non-negative
// density value per band, band centers evenly spaced from 0 to the
// Laplacian spectral bound lmax. Bands holding NaN (degenerate bands) are
// skipped and counted. The descriptors mirror the classic audio spectrum
// ones, with the Laplacian eigenvalue taking the role of frequency: a low
// centroid means the signal's energy sits on smooth graph modes, a high
// centroid means it sits on oscillatory ones.
package spectral

import "math"

// Stats holds descriptors computed from a graph PSD curve.
type Stats struct {
	BandCount      int
	DegenerateBins int // NaN bands skipped during computation

	Sum        float64
	Max        float64
	MaxBand    int
	Min        float64
	MinBand    int
	Average    float64
	Average_dB float64
	Energy     float64 // sum of squared densities

	// Shape descriptors on the eigenvalue axis.
	Centroid float64 // energy-weighted mean eigenvalue
	Spread   float64 // standard deviation around the centroid
	Flatness float64 // geometric/arithmetic mean ratio, 0..1
	Rolloff  float64 // eigenvalue below which 85% of the density mass lies
}

const rolloffFraction = 0.85

// toDB converts a density value to decibels (power convention).
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(v)
}

// bandValue returns the eigenvalue of band i on the linear grid [0, lmax].
func bandValue(i int, lmax float64, bands int) float64 {
	if bands < 2 {
		return 0
	}
	return float64(i) * lmax / float64(bands-1)
}

// Calculate computes all descriptors from a PSD curve over [0, lmax].
//
// NaN entries are treated as missing bands: they contribute nothing and are
// counted in DegenerateBins. A curve with no finite entries yields a zero
// Stats apart from the counts.
func Calculate(psd []float64, lmax float64) Stats {
	var s Stats
	s.BandCount = len(psd)
	if len(psd) == 0 {
		s.Average_dB = math.Inf(-1)
		return s
	}

	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)
	valid := 0

	for i, v := range psd {
		if math.IsNaN(v) {
			s.DegenerateBins++
			continue
		}
		valid++
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBand = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBand = i
		}
	}

	if valid == 0 {
		s.Min, s.Max = 0, 0
		s.Average_dB = math.Inf(-1)
		return s
	}

	s.Average = s.Sum / float64(valid)
	s.Average_dB = toDB(s.Average)

	s.Centroid = centroid(psd, lmax, s.Sum)
	s.Spread = spread(psd, lmax, s.Centroid, s.Sum)
	s.Flatness = flatness(psd, valid)
	s.Rolloff = rolloff(psd, lmax, s.Sum)

	return s
}

// centroid returns the density-weighted mean eigenvalue.
func centroid(psd []float64, lmax, sum float64) float64 {
	if len(psd) < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range psd {
		if math.IsNaN(v) {
			continue
		}
		weighted += bandValue(i, lmax, len(psd)) * v
	}
	return weighted / sum
}

// spread returns the standard deviation of the density around the centroid.
func spread(psd []float64, lmax, cent, sum float64) float64 {
	if len(psd) < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range psd {
		if math.IsNaN(v) {
			continue
		}
		d := bandValue(i, lmax, len(psd)) - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sum)
}

// flatness returns the ratio of the geometric to the arithmetic mean of the
// finite density values. Any zero band makes the geometric mean zero.
func flatness(psd []float64, valid int) float64 {
	if valid == 0 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for _, v := range psd {
		if math.IsNaN(v) {
			continue
		}
		sumLin += v
		if v > 0 {
			sumLog += math.Log(v)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(valid)
	if meanLin == 0 || hasZero {
		return 0
	}

	return math.Exp(sumLog/float64(valid)) / meanLin
}

// rolloff returns the eigenvalue below which rolloffFraction of the density
// mass lies.
func rolloff(psd []float64, lmax, sum float64) float64 {
	if len(psd) < 2 || sum == 0 {
		return 0
	}
	threshold := rolloffFraction * sum
	cum := 0.0
	for i, v := range psd {
		if math.IsNaN(v) {
			continue
		}
		cum += v
		if cum >= threshold {
			return bandValue(i, lmax, len(psd))
		}
	}
	return lmax
}

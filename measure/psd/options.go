package psd

import "math/rand"

const (
	defaultPoints = 30
	defaultProbes = 8
	defaultSeed   = 1
)

// Config holds estimation parameters.
type Config struct {
	// Points is the number of spectrum bands and the length of the returned
	// curves. Must be at least 2.
	Points int

	// Probes is the number of random ±1 probe signals used for the
	// eigenvalue-density baseline. Must be at least 1. More probes reduce
	// the variance of the baseline at proportional filtering cost.
	Probes int

	// Order is the Chebyshev polynomial order used for filtering.
	// Zero selects 2·Points.
	Order int

	// Rand is the probe randomness source. Nil selects a fixed-seed
	// generator, so the zero-configuration call is reproducible.
	Rand *rand.Rand
}

// Option mutates a Config.
//
// Option setters store values verbatim; validation happens in [Estimate] so
// that out-of-range parameters surface as errors rather than silently
// falling back to defaults.
type Option func(*Config)

// DefaultConfig returns the estimation defaults.
func DefaultConfig() Config {
	return Config{
		Points: defaultPoints,
		Probes: defaultProbes,
	}
}

// WithPoints sets the number of spectrum bands.
func WithPoints(n int) Option {
	return func(cfg *Config) {
		cfg.Points = n
	}
}

// WithProbes sets the number of random probe signals.
func WithProbes(n int) Option {
	return func(cfg *Config) {
		cfg.Probes = n
	}
}

// WithOrder sets the Chebyshev polynomial order used for filtering.
func WithOrder(n int) Option {
	return func(cfg *Config) {
		cfg.Order = n
	}
}

// WithRand sets the randomness source for the probe ensemble. Seed it to
// make repeated estimates bit-for-bit reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) {
		cfg.Rand = rng
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

package anneal

import "github.com/rs/zerolog"

// Options configures one Solve call. Construct it only via DefaultOptions
// and the With* functions below.
type Options struct {
	NumSamples  int
	TMin        float64
	TMax        float64
	HaveTMin    bool
	HaveTMax    bool
	Kernel      string
	Seed        int64
	HaveSeed    bool
	Concurrency int
	Logger      zerolog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the defaults Solve starts from before applying
// the caller's options: one sample, the METROPOLIS kernel, both
// temperature bounds estimated from the problem, sequential execution,
// and a disabled logger.
func DefaultOptions() Options {
	return Options{
		NumSamples:  1,
		Kernel:      "METROPOLIS",
		Concurrency: 1,
		Logger:      zerolog.Nop(),
	}
}

// WithNumSamples sets how many independent samples Solve draws. Values
// below 1 are treated as 1.
func WithNumSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.NumSamples = n
	}
}

// WithTMin overrides the lower temperature bound, skipping
// System.EstimateTemperatures for it.
func WithTMin(t float64) Option {
	return func(o *Options) {
		o.TMin = t
		o.HaveTMin = true
	}
}

// WithTMax overrides the upper temperature bound, skipping
// System.EstimateTemperatures for it.
func WithTMax(t float64) Option {
	return func(o *Options) {
		o.TMax = t
		o.HaveTMax = true
	}
}

// WithKernel selects the transition kernel by name: METROPOLIS,
// HEAT_BATH, or SUWA-TODO (case-sensitive). An unrecognized name is
// rejected by Solve with ErrUnknownKernel, not here.
func WithKernel(name string) Option {
	return func(o *Options) { o.Kernel = name }
}

// WithSeed sets the base seed. Sample k uses seed seed+k. Without this
// option, each sample draws its own seed from an unspecified entropy
// source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HaveSeed = true
	}
}

// WithConcurrency bounds how many samples Solve runs at once. Values
// below 1 are treated as 1 (sequential).
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Concurrency = n
	}
}

// WithLogger attaches a zerolog logger Solve uses to trace per-sample
// progress. Without this option, logging is a no-op.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

package config

import (
	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/qlabel"
	"github.com/katalvlaran/qanneal/system"
)

// Term mirrors system.Term in a form viper/mapstructure can decode from
// YAML or JSON: labels as plain strings, rather than qlabel.Label.
type Term struct {
	Labels []string `mapstructure:"labels"`
	Value  float64  `mapstructure:"value"`
}

// Range mirrors system.Range.
type Range struct {
	Lo int `mapstructure:"lo"`
	Hi int `mapstructure:"hi"`
}

// Run is the declarative description of one anneal.Solve invocation: the
// problem (interaction, ranges) plus the run parameters (sweeps,
// samples, temperature bounds, kernel, seed, concurrency).
type Run struct {
	Terms       []Term           `mapstructure:"interaction"`
	Ranges      map[string]Range `mapstructure:"ranges"`
	NumSweeps   int              `mapstructure:"num_sweeps"`
	NumSamples  int              `mapstructure:"num_samples"`
	TMin        *float64         `mapstructure:"t_min"`
	TMax        *float64         `mapstructure:"t_max"`
	Kernel      string           `mapstructure:"kernel"`
	Seed        *int64           `mapstructure:"seed"`
	Concurrency int              `mapstructure:"concurrency"`
}

// Problem converts the declarative Terms/Ranges into the system package's
// working types.
func (r *Run) Problem() (system.Interaction, system.RangeMap) {
	interaction := make(system.Interaction, len(r.Terms))
	for i, term := range r.Terms {
		labels := make([]qlabel.Label, len(term.Labels))
		for j, l := range term.Labels {
			labels[j] = qlabel.Of(l)
		}
		interaction[i] = system.Term{Labels: labels, Value: term.Value}
	}

	ranges := make(system.RangeMap, len(r.Ranges))
	for label, rng := range r.Ranges {
		ranges[qlabel.Of(label)] = system.Range{Lo: rng.Lo, Hi: rng.Hi}
	}

	return interaction, ranges
}

// Options translates the run parameters into anneal.Option values.
// Kernel defaults to METROPOLIS (anneal's own default) when unset.
func (r *Run) Options() []anneal.Option {
	var opts []anneal.Option

	if r.NumSamples > 0 {
		opts = append(opts, anneal.WithNumSamples(r.NumSamples))
	}
	if r.Kernel != "" {
		opts = append(opts, anneal.WithKernel(r.Kernel))
	}
	if r.TMin != nil {
		opts = append(opts, anneal.WithTMin(*r.TMin))
	}
	if r.TMax != nil {
		opts = append(opts, anneal.WithTMax(*r.TMax))
	}
	if r.Seed != nil {
		opts = append(opts, anneal.WithSeed(*r.Seed))
	}
	if r.Concurrency > 0 {
		opts = append(opts, anneal.WithConcurrency(r.Concurrency))
	}

	return opts
}

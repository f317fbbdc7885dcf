package anneal

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qanneal/kernel"
	"github.com/katalvlaran/qanneal/system"
)

// newKernel dispatches on the closed kernel-name set.
func newKernel(name string, maxStates int) (kernel.Kernel, error) {
	switch name {
	case "METROPOLIS":
		return kernel.NewMetropolis(), nil
	case "HEAT_BATH":
		return kernel.NewHeatBath(maxStates), nil
	case "SUWA-TODO":
		return kernel.NewSuwaTodo(maxStates), nil
	default:
		return nil, ErrUnknownKernel
	}
}

// temperatureAt evaluates the geometric cooling schedule at sweep s of
// numSweeps.
func temperatureAt(tMax, tMin float64, s, numSweeps int) float64 {
	if numSweeps <= 1 {
		return tMax
	}
	return tMax * math.Pow(tMin/tMax, float64(s)/float64(numSweeps-1))
}

// Solve runs one or more independent annealing samples over interaction
// and ranges, each performing numSweeps sweeps, and returns the
// aggregated Results. See Option for the available knobs.
func Solve(interaction system.Interaction, ranges system.RangeMap, numSweeps int, opts ...Option) (*Results, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := uuid.New()
	results := &Results{RunID: runID, Samples: make([]SampleResult, cfg.NumSamples)}

	sem := make(chan struct{}, cfg.Concurrency)
	var wg sync.WaitGroup
	errs := make([]error, cfg.NumSamples)

	for k := 0; k < cfg.NumSamples; k++ {
		k := k
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			seed := sampleSeed(cfg, k)
			sample, err := runSample(interaction, ranges, numSweeps, cfg, seed)
			if err != nil {
				errs[k] = err
				return
			}
			results.Samples[k] = sample
			cfg.Logger.Debug().
				Str("run_id", runID.String()).
				Int("sample", k).
				Float64("energy", sample.Energy).
				Dur("duration", sample.Duration).
				Msg("sample complete")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// sampleSeed returns the seed for sample index k: seed+k when the caller
// supplied a base seed, otherwise an unspecified entropy source.
func sampleSeed(cfg Options, k int) int64 {
	if cfg.HaveSeed {
		return cfg.Seed + int64(k)
	}
	return time.Now().UnixNano() + int64(k)
}

func runSample(interaction system.Interaction, ranges system.RangeMap, numSweeps int, cfg Options, seed int64) (SampleResult, error) {
	start := time.Now()

	sys, err := system.New(interaction, ranges, seed)
	if err != nil {
		return SampleResult{}, err
	}

	k, err := newKernel(cfg.Kernel, sys.MaxNumStates())
	if err != nil {
		return SampleResult{}, err
	}

	tMax, tMin := cfg.TMax, cfg.TMin
	if !cfg.HaveTMax || !cfg.HaveTMin {
		estMax, estMin, err := sys.EstimateTemperatures()
		if err != nil {
			return SampleResult{}, err
		}
		if !cfg.HaveTMax {
			tMax = estMax
		}
		if !cfg.HaveTMin {
			tMin = estMin
		}
	}

	for s := 0; s < numSweeps; s++ {
		t := temperatureAt(tMax, tMin, s, numSweeps)
		for site := 0; site < sys.Size(); site++ {
			newValue := k.Propose(sys, site, t)
			sys.SetValue(site, newValue)
		}
	}

	return SampleResult{
		Assignment: sys.StateDict(),
		Energy:     sys.Energy(),
		Duration:   time.Since(start),
		NumSweeps:  numSweeps,
		Kernel:     cfg.Kernel,
		Seed:       seed,
		TMin:       tMin,
		TMax:       tMax,
	}, nil
}

package anneal

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qanneal/qlabel"
)

// SampleResult is the outcome of one annealing run.
type SampleResult struct {
	Assignment map[qlabel.Label]int
	Energy     float64
	Duration   time.Duration
	NumSweeps  int
	Kernel     string
	Seed       int64
	TMin       float64
	TMax       float64
}

// Results aggregates every SampleResult produced by one Solve call.
type Results struct {
	RunID   uuid.UUID
	Samples []SampleResult
}

// tieTolerance is the absolute-or-relative slack Best() uses when
// comparing energies for the minimum-energy tie set.
const tieTolerance = 1e-9

// Best returns every sample tied for the lowest energy, within
// tieTolerance (absolute or relative, whichever is larger). It returns
// nil if Results holds no samples.
func (r *Results) Best() []SampleResult {
	if len(r.Samples) == 0 {
		return nil
	}

	min := r.Samples[0].Energy
	for _, s := range r.Samples[1:] {
		if s.Energy < min {
			min = s.Energy
		}
	}

	var best []SampleResult
	for _, s := range r.Samples {
		tolerance := tieTolerance
		if abs := math.Abs(min) * tieTolerance; abs > tolerance {
			tolerance = abs
		}
		if s.Energy <= min+tolerance {
			best = append(best, s)
		}
	}

	return best
}

// Summary reports count, best/worst/mean/stddev energy across samples.
type Summary struct {
	Count  int
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64
}

// Summary computes aggregate statistics over every sample's energy.
func (r *Results) Summary() Summary {
	if len(r.Samples) == 0 {
		return Summary{}
	}

	best, worst, sum := r.Samples[0].Energy, r.Samples[0].Energy, 0.0
	for _, s := range r.Samples {
		if s.Energy < best {
			best = s.Energy
		}
		if s.Energy > worst {
			worst = s.Energy
		}
		sum += s.Energy
	}
	mean := sum / float64(len(r.Samples))

	var variance float64
	for _, s := range r.Samples {
		d := s.Energy - mean
		variance += d * d
	}
	variance /= float64(len(r.Samples))

	return Summary{
		Count:  len(r.Samples),
		Best:   best,
		Worst:  worst,
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}
}

package system

import (
	"math"

	"github.com/katalvlaran/qanneal/qlabel"
	"gonum.org/v1/gonum/floats"
)

// significanceThreshold is the |ΔE| cutoff EstimateTemperatures uses to
// decide whether a move is "non-trivial".
const significanceThreshold = 1e-7

// GetDE returns the change in total energy from committing candidate at
// site i, given the System's current assignment. It does not mutate the
// System. ΔE(i, v') = a·(dE[i] + S[i]·(2v + a)) where a = v' - v and v is
// the site's current value — the central ΔE identity System maintains.
func (sys *System) GetDE(i int, candidate int) float64 {
	v := sys.vars[i].Value()
	a := float64(candidate - v)
	return a * (sys.dE[i] + sys.s[i]*(2*float64(v)+a))
}

// SetValue commits newValue at site i, updating every neighbor's local
// field in O(deg(i)). It is a no-op if newValue already equals the
// site's current value. site i's own dE[i] is not touched, since dE[i]
// never depends on value[i].
func (sys *System) SetValue(i int, newValue int) {
	v := sys.vars[i].Value()
	if newValue == v {
		return
	}

	delta := float64(newValue - v)
	for _, nb := range sys.j[i] {
		sys.dE[nb.j] += nb.w * delta
	}

	sys.vars[i].Commit(newValue)
}

// Energy computes the total energy of assignment, a slice of per-site
// values indexed the same as IndexList. If assignment is omitted, the
// System's current values are used.
//
//	E = Σ h[i]·v[i] + Σ S[i]·v[i]² + ½ Σ_i Σ_{(j,w)∈J[i]} w·v[i]·v[j]
func (sys *System) Energy(assignment ...[]int) float64 {
	values := sys.currentValues()
	if len(assignment) > 0 {
		values = assignment[0]
	}

	var e float64
	for i := range values {
		vi := float64(values[i])
		e += sys.h[i] * vi
		e += sys.s[i] * vi * vi
		for _, nb := range sys.j[i] {
			e += 0.5 * nb.w * vi * float64(values[nb.j])
		}
	}

	return e
}

func (sys *System) currentValues() []int {
	values := make([]int, len(sys.vars))
	for i, v := range sys.vars {
		values[i] = v.Value()
	}
	return values
}

// BestLocalState returns the state in [0, numStates) that minimizes ΔE at
// site i, breaking ties toward the lowest state index, along with that
// minimal ΔE. Used by the Suwa–Todo kernel to find the mode of the
// site's target distribution.
func (sys *System) BestLocalState(i int) (state int, deltaE float64) {
	n := sys.vars[i].NumStates()
	bestState, bestDE := 0, sys.GetDE(i, sys.vars[i].ValueOf(0))

	for s := 1; s < n; s++ {
		d := sys.GetDE(i, sys.vars[i].ValueOf(s))
		if d < bestDE {
			bestState, bestDE = s, d
		}
	}

	return bestState, bestDE
}

// StateDict reverses the label↔index bijection, returning the System's
// current assignment keyed by label.
func (sys *System) StateDict() map[qlabel.Label]int {
	out := make(map[qlabel.Label]int, len(sys.indexList))
	for i, l := range sys.indexList {
		out[l] = sys.vars[i].Value()
	}
	return out
}

// EstimateTemperatures scans every site and every state, collecting
// |ΔE(i, value_of(state))| strictly greater than significanceThreshold,
// and derives (tMax, tMin) from their extremes: at tMax the worst uphill
// move has acceptance ≈ 1/4; at tMin the smallest non-trivial uphill move
// has acceptance ≈ 1/100. If no |ΔE| clears the
// threshold, it returns ErrTrivialProblem.
func (sys *System) EstimateTemperatures() (tMax, tMin float64, err error) {
	var magnitudes []float64

	for i := range sys.vars {
		n := sys.vars[i].NumStates()
		for s := 0; s < n; s++ {
			d := math.Abs(sys.GetDE(i, sys.vars[i].ValueOf(s)))
			if d > significanceThreshold {
				magnitudes = append(magnitudes, d)
			}
		}
	}

	if len(magnitudes) == 0 {
		return 0, 0, ErrTrivialProblem
	}

	dMax := floats.Max(magnitudes)
	dMin := floats.Min(magnitudes)

	return dMax / math.Log(4), dMin / math.Log(100), nil
}

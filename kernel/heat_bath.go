package kernel

import (
	"math"

	"github.com/katalvlaran/qanneal/system"
)

// HeatBath samples a new value for a site from its full conditional
// distribution p_s ∝ exp(-d_s/T) over all K states, via inverse CDF.
type HeatBath struct {
	weights []float64
}

// NewHeatBath returns a Heat-Bath kernel whose scratch buffer is sized
// to maxStates, the largest per-site num_states across the System it
// will be used with. The buffer is reused across every Propose call.
func NewHeatBath(maxStates int) Kernel {
	return &HeatBath{weights: make([]float64, maxStates)}
}

// Propose enumerates site's K states, shifts by the minimum ΔE for
// numerical stability, and draws the destination state by inverse CDF
// over the normalized Boltzmann weights.
func (k *HeatBath) Propose(sys *system.System, site int, temperature float64) int {
	v := sys.Var(site)
	n := v.NumStates

	weights := k.weights[:n]
	m := math.Inf(1)
	for s := 0; s < n; s++ {
		d := sys.GetDE(site, v.Lo+s)
		weights[s] = d
		if d < m {
			m = d
		}
	}

	var z float64
	for s := 0; s < n; s++ {
		weights[s] = math.Exp(clampExpArgument(-(weights[s] - m) / temperature))
		z += weights[s]
	}

	u := sys.NextUniform() * z
	var cumulative float64
	for s := 0; s < n; s++ {
		cumulative += weights[s]
		if u < cumulative {
			return v.Lo + s
		}
	}

	return v.Lo + n - 1
}

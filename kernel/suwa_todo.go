package kernel

import (
	"math"

	"github.com/katalvlaran/qanneal/system"
)

// SuwaTodo is a rejection-free kernel: it builds a transition matrix
// over a site's K states that maximizes move probability while still
// converging to the target distribution p_s ∝ exp(-d_s/T), via the
// Suwa-Todo ring construction.
type SuwaTodo struct {
	weights []float64 // w', reordered Boltzmann factors
	c       []float64 // prefix-sum ring, length maxStates+1
}

// NewSuwaTodo returns a Suwa-Todo kernel whose scratch buffers are
// sized to maxStates, the largest per-site num_states across the
// System it will be used with.
func NewSuwaTodo(maxStates int) Kernel {
	return &SuwaTodo{
		weights: make([]float64, maxStates),
		c:       make([]float64, maxStates+1),
	}
}

// swapIndex maps a state index through the 0<->sMax involution used to
// bring the distribution's mode to position 0.
func swapIndex(idx, sMax int) int {
	switch idx {
	case 0:
		return sMax
	case sMax:
		return 0
	default:
		return idx
	}
}

// Propose builds the Suwa-Todo ring and never rejects: the returned
// state may equal the current one, but the construction systematically
// favors distinct states over self-loops while preserving global
// balance onto the target distribution.
func (k *SuwaTodo) Propose(sys *system.System, site int, temperature float64) int {
	v := sys.Var(site)
	n := v.NumStates

	sMax, m := sys.BestLocalState(site)

	weights := k.weights[:n]
	for s := 0; s < n; s++ {
		shifted := sys.GetDE(site, v.Lo+s) - m
		weights[s] = math.Exp(clampExpArgument(-shifted / temperature))
	}
	weights[0], weights[sMax] = weights[sMax], weights[0]

	c := k.c[:n+1]
	c[0] = 0
	for s := 0; s < n; s++ {
		c[s+1] = c[s] + weights[s]
	}
	total := c[n]
	c[0] = total

	currentState := v.State
	cPrime := swapIndex(currentState, sMax)

	u := sys.NextUniform()
	var running float64
	for j := 0; j < n; j++ {
		dij := c[cPrime+1] - c[j] + c[1]
		pij := math.Max(0, math.Min(math.Min(dij, 1+weights[j]-dij), math.Min(1, weights[j])))
		running += pij
		if running > u {
			destination := swapIndex(j, sMax)
			return v.Lo + destination
		}
	}

	destination := swapIndex(n-1, sMax)
	return v.Lo + destination
}

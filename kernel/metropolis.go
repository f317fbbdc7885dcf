package kernel

import (
	"math"

	"github.com/katalvlaran/qanneal/system"
)

// Metropolis accepts an uphill move with probability exp(-ΔE/T), always
// accepts downhill and zero-change moves, and otherwise leaves the site
// unchanged.
type Metropolis struct{}

// NewMetropolis returns a Metropolis kernel. It holds no state and
// allocates no scratch buffers.
func NewMetropolis() Kernel {
	return Metropolis{}
}

// Propose draws a candidate from site's own Variable and accepts or
// rejects it using a uniform draw from the System's PRNG.
func (Metropolis) Propose(sys *system.System, site int, temperature float64) int {
	current := sys.Var(site).Value
	candidate := sys.Candidate(site)
	if candidate == current {
		return current
	}

	deltaE := sys.GetDE(site, candidate)
	if deltaE <= 0 {
		return candidate
	}

	u := sys.NextUniform()
	if u < math.Exp(clampExpArgument(-deltaE/temperature)) {
		return candidate
	}

	return current
}

package kernel

import "github.com/katalvlaran/qanneal/system"

// minExpArgument is the floor clamp applied to the argument of math.Exp
// before evaluating it. It sits safely above the point where math.Exp
// underflows to 0 but well short of producing -Inf or NaN from a T close
// to zero.
const minExpArgument = -700

// Kernel proposes a new value for one site of sys at the given
// temperature, without committing it. The caller is responsible for
// calling sys.SetValue if the proposal should take effect.
type Kernel interface {
	Propose(sys *system.System, site int, temperature float64) int
}

func clampExpArgument(x float64) float64 {
	if x < minExpArgument {
		return minExpArgument
	}
	return x
}

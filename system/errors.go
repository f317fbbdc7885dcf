package system

import "errors"

// Sentinel errors returned by System construction and estimation.
var (
	// ErrInvalidInteraction indicates a Term whose Labels length is not 1 or 2.
	ErrInvalidInteraction = errors.New("system: interaction term must have 1 or 2 labels")

	// ErrInvalidDomain indicates a Range with Lo > Hi.
	ErrInvalidDomain = errors.New("system: invalid domain, lo must be <= hi")

	// ErrTrivialProblem indicates EstimateTemperatures found no |ΔE| greater
	// than the significance threshold, so no temperature bounds could be
	// derived from the problem's move spectrum.
	ErrTrivialProblem = errors.New("system: trivial problem, cannot estimate temperature bounds")
)

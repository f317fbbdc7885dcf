package anneal

import "errors"

// ErrUnknownKernel indicates a kernel name other than METROPOLIS,
// HEAT_BATH, or SUWA-TODO.
var ErrUnknownKernel = errors.New("anneal: unknown kernel name")

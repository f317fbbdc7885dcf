// Package variable implements the per-site integer domain a System anneals
// over.
//
// A Variable owns a closed integer range [lo, hi], a current state index
// into that range, and an independent math/rand source used only for its
// own initial-state draw and candidate() proposals — Variables never
// share a PRNG with each other or with the System, so draws at one site
// never advance another site's random sequence.
//
// Construction:
//
//	– lo must be ≤ hi, else New returns ErrInvalidDomain.
//	– The initial state is drawn uniformly from [0, numStates) using the
//	  Variable's own PRNG; value = lo + state.
//
// Operations:
//
//	– Candidate(): returns a value in [lo, hi] distinct from the current
//	  value, sampled uniformly over the numStates-1 alternatives, except
//	  when numStates == 1 where it returns the (only) current value.
//	– ValueOf(state): lo + state.
//	– Commit(v): sets state = v - lo and value = v.
package variable

package variable

import "math/rand"

// Variable is a single site's bounded integer domain plus its current
// state and independent PRNG. Variables are owned exclusively by the
// System that constructed them; see package doc for the no-shared-PRNG
// discipline this relies on.
type Variable struct {
	lo        int
	numStates int
	state     int
	value     int
	rng       *rand.Rand
}

// New constructs a Variable over the closed range [lo, hi], seeded
// independently from seed. The initial state is drawn uniformly from
// [0, numStates).
func New(lo, hi int, seed int64) (*Variable, error) {
	if lo > hi {
		return nil, ErrInvalidDomain
	}

	numStates := hi - lo + 1
	rng := rand.New(rand.NewSource(seed))

	state := 0
	if numStates > 1 {
		state = rng.Intn(numStates)
	}

	return &Variable{
		lo:        lo,
		numStates: numStates,
		state:     state,
		value:     lo + state,
		rng:       rng,
	}, nil
}

// Candidate returns a value in [lo, hi] distinct from the current value,
// sampled uniformly over the complement of the current state. When the
// domain has only one state, Candidate returns the current value
// unchanged and does not consult the PRNG — this is the resolution of
// numStates == 1, where the complement of the current state is empty.
func (v *Variable) Candidate() int {
	if v.numStates == 1 {
		return v.value
	}

	s := v.rng.Intn(v.numStates - 1)
	if s >= v.state {
		s++
	}

	return v.lo + s
}

// ValueOf converts a state index into its domain value.
func (v *Variable) ValueOf(state int) int { return v.lo + state }

// Commit sets the Variable's current value, updating state in lockstep.
// It is the caller's responsibility to ensure newValue lies in [lo, hi].
func (v *Variable) Commit(newValue int) {
	v.state = newValue - v.lo
	v.value = newValue
}

// Value returns the current domain value.
func (v *Variable) Value() int { return v.value }

// State returns the current state index.
func (v *Variable) State() int { return v.state }

// Lo returns the lower domain bound.
func (v *Variable) Lo() int { return v.lo }

// Hi returns the upper domain bound.
func (v *Variable) Hi() int { return v.lo + v.numStates - 1 }

// NumStates returns the number of distinct states, hi - lo + 1.
func (v *Variable) NumStates() int { return v.numStates }

// View is a read-only snapshot of a Variable, safe to hand to callers
// outside the System that owns the live Variable.
type View struct {
	Lo        int
	Hi        int
	NumStates int
	Value     int
	State     int
}

// Snapshot returns a read-only View of the Variable's current domain and
// value.
func (v *Variable) Snapshot() View {
	return View{
		Lo:        v.lo,
		Hi:        v.Hi(),
		NumStates: v.numStates,
		Value:     v.value,
		State:     v.state,
	}
}

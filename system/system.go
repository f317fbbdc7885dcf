package system

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/qanneal/qlabel"
	"github.com/katalvlaran/qanneal/variable"
)

// System holds one normalized annealing problem: the label↔index
// bijection, neighbor lists J, linear field h, diagonal self-couplings S,
// the current assignment (owned by its Variables), and the local-field
// cache dE. A System is constructed once per sample and discarded at the
// end; it is not safe for concurrent use by multiple goroutines.
type System struct {
	indexList []qlabel.Label
	indexMap  map[qlabel.Label]int
	h         []float64
	s         []float64
	j         [][]neighbor
	vars      []*variable.Variable
	dE        []float64
	rng       *rand.Rand
}

type normalizedTerm struct {
	labels []qlabel.Label
	value  float64
}

// New normalizes interaction and ranges into a System, deriving every
// Variable's initial state from seed. It returns ErrInvalidInteraction if
// any Term has other than 1 or 2 labels, or ErrInvalidDomain if the range
// of any label referenced by interaction has Lo > Hi. Ranges for labels
// the interaction does not reference are ignored.
func New(interaction Interaction, ranges RangeMap, seed int64) (*System, error) {
	normalized, order, err := normalize(interaction)
	if err != nil {
		return nil, err
	}

	indexList, indexMap := buildIndex(normalized, order)

	n := len(indexList)
	h := make([]float64, n)
	s := make([]float64, n)
	j := make([][]neighbor, n)

	for _, key := range order {
		nt := normalized[key]
		switch len(nt.labels) {
		case 1:
			i := indexMap[nt.labels[0]]
			h[i] += nt.value
		case 2:
			a, b := indexMap[nt.labels[0]], indexMap[nt.labels[1]]
			if a == b {
				s[a] += nt.value
			} else {
				j[a] = append(j[a], neighbor{j: b, w: nt.value})
				j[b] = append(j[b], neighbor{j: a, w: nt.value})
			}
		}
	}

	for i := range j {
		sort.Slice(j[i], func(x, y int) bool { return j[i][x].j < j[i][y].j })
	}

	sysRng := rand.New(rand.NewSource(seed))
	variableSeed := sysRng.Int63()

	vars, err := buildVariables(indexList, ranges, variableSeed)
	if err != nil {
		return nil, err
	}

	sys := &System{
		indexList: indexList,
		indexMap:  indexMap,
		h:         h,
		s:         s,
		j:         j,
		vars:      vars,
		dE:        make([]float64, n),
		rng:       sysRng,
	}
	sys.recomputeLocalFields()

	return sys, nil
}

// normalize sorts each Term's labels, sums Terms sharing the same sorted
// tuple, and returns the working map alongside a stable first-seen order
// for its keys (so construction doesn't depend on Go's map iteration
// order).
func normalize(interaction Interaction) (map[string]normalizedTerm, []string, error) {
	normalized := make(map[string]normalizedTerm, len(interaction))
	order := make([]string, 0, len(interaction))

	for _, term := range interaction {
		if len(term.Labels) != 1 && len(term.Labels) != 2 {
			return nil, nil, ErrInvalidInteraction
		}

		sorted := append([]qlabel.Label(nil), term.Labels...)
		qlabel.Sort(sorted)
		key := tupleKey(sorted)

		nt, ok := normalized[key]
		if !ok {
			order = append(order, key)
			nt.labels = sorted
		}
		nt.value += term.Value
		normalized[key] = nt
	}

	return normalized, order, nil
}

func tupleKey(sorted []qlabel.Label) string {
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		// %#v prints the Label's internal key, so an int label and a string
		// label with the same String() text stay distinct.
		parts[i] = fmt.Sprintf("%#v", l)
	}
	return strings.Join(parts, "\x00")
}

// buildIndex collects the distinct labels referenced by the normalized
// interaction and returns them sorted (index_list), along with the
// label→index bijection.
func buildIndex(normalized map[string]normalizedTerm, order []string) ([]qlabel.Label, map[qlabel.Label]int) {
	seen := make(map[qlabel.Label]struct{})
	var labels []qlabel.Label

	for _, key := range order {
		for _, l := range normalized[key].labels {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				labels = append(labels, l)
			}
		}
	}

	qlabel.Sort(labels)

	indexMap := make(map[qlabel.Label]int, len(labels))
	for i, l := range labels {
		indexMap[l] = i
	}

	return labels, indexMap
}

// buildVariables constructs one Variable per indexed label, in index
// order, drawing each Variable's seed from a secondary PRNG seeded with
// secondarySeed (itself the first draw from the System's own PRNG, so it
// depends only on the original seed, never on the shape of the
// interaction). Because the secondary PRNG is drawn sequentially in
// index order, and index order depends only on the sorted label sequence
// (not label identity), two Systems built from structurally identical
// problems with differently-named labels get identical initial Variable
// values.
func buildVariables(indexList []qlabel.Label, ranges RangeMap, secondarySeed int64) ([]*variable.Variable, error) {
	seedRng := rand.New(rand.NewSource(secondarySeed))
	vars := make([]*variable.Variable, len(indexList))

	for i, l := range indexList {
		lo, hi := 0, 1
		if r, ok := ranges[l]; ok {
			if r.Lo > r.Hi {
				return nil, ErrInvalidDomain
			}
			lo, hi = r.Lo, r.Hi
		}

		v, err := variable.New(lo, hi, seedRng.Int63())
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}

	return vars, nil
}

// recomputeLocalFields computes dE[i] = h[i] + Σ w·value[j] from scratch
// over the current assignment. Called once at construction time; never
// again, since SetValue maintains the cache incrementally.
func (sys *System) recomputeLocalFields() {
	for i := range sys.dE {
		total := sys.h[i]
		for _, nb := range sys.j[i] {
			total += nb.w * float64(sys.vars[nb.j].Value())
		}
		sys.dE[i] = total
	}
}

// Size returns the number of sites.
func (sys *System) Size() int { return len(sys.indexList) }

// IndexList returns the sorted sequence of distinct labels the
// Interaction referenced, defining the label↔index bijection. The
// returned slice is a copy; callers may not mutate System state through
// it.
func (sys *System) IndexList() []qlabel.Label {
	out := make([]qlabel.Label, len(sys.indexList))
	copy(out, sys.indexList)
	return out
}

// IndexOf returns the site index for label, and whether it was found.
func (sys *System) IndexOf(l qlabel.Label) (int, bool) {
	i, ok := sys.indexMap[l]
	return i, ok
}

// Var returns a read-only snapshot of site i's Variable.
func (sys *System) Var(i int) variable.View {
	return sys.vars[i].Snapshot()
}

// Candidate draws a candidate value for site i from that site's own
// Variable PRNG — never the System's PRNG. Per-Variable PRNGs are
// consumed only by candidate() and initial state choice.
func (sys *System) Candidate(i int) int {
	return sys.vars[i].Candidate()
}

// NextUniform draws the next value in [0, 1) from the System's own PRNG.
// Kernels use this for acceptance and inverse-CDF sampling; it is
// distinct from any Variable's PRNG: kernels need a single acceptance
// and inverse-CDF stream shared across sites and sweeps within one
// sample, and this is that stream.
func (sys *System) NextUniform() float64 { return sys.rng.Float64() }

// MaxNumStates returns the largest per-site NumStates across the whole
// System, the capacity kernels size their scratch buffers to at
// construction time.
func (sys *System) MaxNumStates() int {
	max := 0
	for _, v := range sys.vars {
		if n := v.NumStates(); n > max {
			max = n
		}
	}
	return max
}

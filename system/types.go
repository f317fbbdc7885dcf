package system

import "github.com/katalvlaran/qanneal/qlabel"

// Term is one entry of an Interaction: a coefficient attached to an
// unordered tuple of one or two labels. A Term with two equal labels
// denotes a diagonal (self) coupling.
type Term struct {
	Labels []qlabel.Label
	Value  float64
}

// Interaction is the sparse quadratic form as given by the caller.
// Multiple Terms referring to the same unordered label tuple are summed
// during normalization.
type Interaction []Term

// Range is a closed integer domain [Lo, Hi], Lo <= Hi.
type Range struct {
	Lo int
	Hi int
}

// RangeMap gives the domain for each label that should have one. Any
// label appearing in the Interaction but absent here defaults to
// Range{Lo: 0, Hi: 1}.
type RangeMap map[qlabel.Label]Range

// neighbor is one entry of a site's adjacency list: the neighbor's site
// index and the (already-summed) coupling weight between the two sites.
type neighbor struct {
	j int
	w float64
}

package qlabel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Label identifies a site by its canonical string form. The zero Label is
// invalid; construct one with Of. Label is always safe to use as a map
// key or in == comparisons: unlike a raw any, it never panics on
// comparison, because it stores only the canonicalized string.
type Label struct {
	key string
}

// Of wraps v as a Label. Supported concrete types are string, int, int64,
// and anything implementing fmt.Stringer; any other type falls back to
// fmt.Sprintf("%v", v) for its canonical form. Two Labels built from
// values with the same canonical form are the same Label.
func Of(v any) Label {
	return Label{key: canonicalize(v)}
}

func canonicalize(v any) string {
	switch t := v.(type) {
	case string:
		return "s:" + t
	case int:
		return "i:" + sortableInt64(int64(t))
	case int64:
		return "i:" + sortableInt64(t)
	case fmt.Stringer:
		return "s:" + t.String()
	default:
		return "s:" + fmt.Sprintf("%v", t)
	}
}

// sortableInt64 encodes v as a fixed-width, zero-padded decimal string of
// its unsigned bit pattern with the sign bit flipped, so that lexicographic
// order on the string matches numeric order on v across the full int64
// range (including negatives) rather than digit-by-digit string order.
func sortableInt64(v int64) string {
	u := uint64(v) ^ (1 << 63)
	return fmt.Sprintf("%020d", u)
}

// decodeSortableInt64 reverses sortableInt64.
func decodeSortableInt64(key string) (int64, error) {
	u, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, err
	}
	return int64(u ^ (1 << 63)), nil
}

// String returns the display form: the original decimal text for an
// int-derived Label, or the wrapped string for a string-derived one.
// Ordering (Less, Sort) uses the internal canonical key, not this text.
func (l Label) String() string {
	switch {
	case strings.HasPrefix(l.key, "i:"):
		v, err := decodeSortableInt64(l.key[2:])
		if err != nil {
			return l.key[2:]
		}
		return strconv.FormatInt(v, 10)
	case len(l.key) > 2:
		return l.key[2:]
	default:
		return l.key
	}
}

// Less reports whether l sorts before other by canonical form.
func (l Label) Less(other Label) bool { return l.key < other.key }

// Sort sorts labels into the stable order System uses to build index_list.
func Sort(labels []Label) {
	sort.Slice(labels, func(i, j int) bool { return labels[i].Less(labels[j]) })
}

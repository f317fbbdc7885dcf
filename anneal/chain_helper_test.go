package anneal_test

import (
	"testing"

	"github.com/katalvlaran/qanneal/qlabel"
	"github.com/katalvlaran/qanneal/system"
)

func buildChainFor(tb testing.TB, n int) (system.Interaction, system.RangeMap) {
	tb.Helper()
	interaction := make(system.Interaction, 0, n)
	ranges := make(system.RangeMap, n)
	for i := 0; i < n-1; i++ {
		interaction = append(interaction, system.Term{
			Labels: []qlabel.Label{qlabel.Of(i), qlabel.Of(i + 1)},
			Value:  1,
		})
	}
	for i := 0; i < n; i++ {
		ranges[qlabel.Of(i)] = system.Range{Lo: 0, Hi: 3}
	}
	return interaction, ranges
}

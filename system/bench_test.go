package system_test

import (
	"testing"

	"github.com/katalvlaran/qanneal/qlabel"
	"github.com/katalvlaran/qanneal/system"
)

func buildChain(n int) (system.Interaction, system.RangeMap) {
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

func BenchmarkNew(b *testing.B) {
	interaction, ranges := buildChain(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = system.New(interaction, ranges, int64(i))
	}
}

func BenchmarkSetValue(b *testing.B) {
	interaction, ranges := buildChain(500)
	sys, _ := system.New(interaction, ranges, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		site := i % sys.Size()
		sys.SetValue(site, i%4)
	}
}

func BenchmarkGetDE(b *testing.B) {
	interaction, ranges := buildChain(500)
	sys, _ := system.New(interaction, ranges, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		site := i % sys.Size()
		_ = sys.GetDE(site, i%4)
	}
}

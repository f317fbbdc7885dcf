package variable_test

import (
	"testing"

	"github.com/katalvlaran/qanneal/variable"
)

func BenchmarkCandidate(b *testing.B) {
	v, err := variable.New(0, 63, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Commit(v.Candidate())
	}
}

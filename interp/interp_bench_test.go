package interp

import (
	"testing"

	"github.com/cwbudde/algo-rt/internal/testutil"
)

func BenchmarkLocate(b *testing.B) {
	x, y := testutil.DeterministicScatter(4, 5000, 1)
	qx, qy := testutil.RegularScatter(100, 100, -0.9, 0.9, -0.9, 0.9)

	for _, m := range []Method{Nearest, Linear, Cubic} {
		s, err := New(m, x, y)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = s.Locate(qx, qy)
			}
		})
	}
}

func BenchmarkTriangulate(b *testing.B) {
	x, y := testutil.DeterministicScatter(4, 5000, 1)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := New(Linear, x, y); err != nil {
			b.Fatal(err)
		}
	}
}

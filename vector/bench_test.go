// Package vector_test provides benchmarks for vector arithmetic.
package vector_test

import (
	"fmt"
	"testing"

	"github.com/Svoloch2940194/mp2-lab2-matrix/vector"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector[float64]
	sinkF float64
)

// fillRamp builds an n-vector with v[i] = i.
func fillRamp(b *testing.B, n int) *vector.Vector[float64] {
	b.Helper()
	v, err := vector.New[float64](n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		_ = v.Set(i, float64(i))
	}

	return v
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := fillRamp(b, n), fillRamp(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = s
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := fillRamp(b, n), fillRamp(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	x := fillRamp(b, 1<<14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV = x.Clone()
	}
}

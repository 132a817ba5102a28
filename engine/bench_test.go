// SPDX-License-Identifier: MIT
// Package engine_test provides benchmarks for the hot series kernels.

package engine_test

import (
	"testing"

	"github.com/katalvlaran/lvtpsa/engine"
)

// sinks to defeat dead-code elimination
var (
	sink6 engine.TPSA[nv6mo4]
	sink4 engine.TPSA[nv4mo4]
)

// benchSeries fills every coefficient with a deterministic non-zero value.
func benchSeries[S engine.Shape](b *testing.B) engine.TPSA[S] {
	b.Helper()
	c := make([]float64, engine.Dim[S]())
	for i := range c {
		c[i] = 1.0 / float64(i+1)
	}
	s, err := engine.New[S](c)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func BenchmarkMul6D4(b *testing.B) {
	b.ReportAllocs()
	x, y := benchSeries[nv6mo4](b), benchSeries[nv6mo4](b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink6 = x.Mul(y)
	}
}

func BenchmarkSin6D4(b *testing.B) {
	b.ReportAllocs()
	x := benchSeries[nv6mo4](b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink6 = x.Sin()
	}
}

func BenchmarkExp4D4(b *testing.B) {
	b.ReportAllocs()
	x := benchSeries[nv4mo4](b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = x.Exp()
	}
}

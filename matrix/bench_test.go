// Package matrix_test provides benchmarks for the fixed-size products.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlight/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkC2 matrix.C2
	sinkR4 matrix.R4
	sinkV4 [4]float64
	sinkB  bool
)

func randC2(seed int64) matrix.C2 {
	r := rand.New(rand.NewSource(seed))
	var m matrix.C2
	for i := range m {
		for j := range m[i] {
			m[i][j] = complex(r.Float64(), r.Float64())
		}
	}
	return m
}

func randR4(seed int64) matrix.R4 {
	r := rand.New(rand.NewSource(seed))
	var m matrix.R4
	for i := range m {
		for j := range m[i] {
			m[i][j] = r.Float64()
		}
	}
	return m
}

func BenchmarkC2Mul(b *testing.B) {
	b.ReportAllocs()
	x, y := randC2(1337), randC2(4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkC2 = x.Mul(y)
	}
}

func BenchmarkR4Mul(b *testing.B) {
	b.ReportAllocs()
	x, y := randR4(1337), randR4(4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkR4 = x.Mul(y)
	}
}

func BenchmarkR4MulVec(b *testing.B) {
	b.ReportAllocs()
	x := randR4(1337)
	v := [4]float64{1, 0.3, -0.2, 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkV4 = x.MulVec(v)
	}
}

func BenchmarkR4AllClose(b *testing.B) {
	b.ReportAllocs()
	x := randR4(1337)
	y := x
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = x.AllClose(y)
	}
}

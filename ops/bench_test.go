// SPDX-License-Identifier: MIT

// Package ops_test provides benchmarks for the serial kernels, using
// deterministic random fill over banded matrices (tridiagonal operands,
// pentadiagonal destinations for the sparse product).
package ops_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/dense"
	"github.com/katalvlaran/lvlmat/ops"
	"github.com/katalvlaran/lvlmat/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// sink to defeat dead-code elimination
var sinkErr error

// bandedCSR builds an n×n matrix storing every position with |i-j| <= band,
// filled from a seeded source for reproducibility.
func bandedCSR(b *testing.B, n, band int, seed int64) *sparse.CSR {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	coo, err := sparse.NewCOO(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i - band; j <= i+band; j++ {
			if j < 0 || j >= n {
				continue
			}
			if err = coo.Push(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
	return coo.ToCSR()
}

// randDense builds an r×c dense matrix from a seeded source.
func randDense(b *testing.B, r, c int, seed int64) *dense.Dense {
	b.Helper()
	m, err := dense.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		row := m.RowView(i)
		for j := range row {
			row[j] = rng.Float64()
		}
	}
	return m
}

func BenchmarkSpMMCSRDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			bm := randDense(b, n, 8, 4242)
			c := randDense(b, n, 8, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ops.SpMMCSRDense(c, 0.5, 2, ops.NoTrans, a, ops.NoTrans, bm)
			}
		})
	}
}

func BenchmarkSpMMCSRDense_TransA(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			bm := randDense(b, n, 8, 4242)
			c := randDense(b, n, 8, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ops.SpMMCSRDense(c, 0.5, 2, ops.Trans, a, ops.NoTrans, bm)
			}
		})
	}
}

func BenchmarkSpAddCSR_SharedPattern(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			c, err := sparse.NewCSRFromPattern(a.Pattern(), nil)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = ops.SpAddCSR(c, 0.5, 2, ops.NoTrans, a)
			}
		})
	}
}

func BenchmarkSpAddCSR_GeneralPath(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			// Superset destination: wider band, distinct pattern object.
			c := bandedCSR(b, n, 2, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = ops.SpAddCSR(c, 0.5, 2, ops.NoTrans, a)
			}
		})
	}
}

func BenchmarkSpMMCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			bb := bandedCSR(b, n, 1, 4242)
			// Product of two tridiagonals is pentadiagonal.
			c := bandedCSR(b, n, 2, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = ops.SpMMCSR(c, 0.5, 2, ops.NoTrans, a, ops.NoTrans, bb)
			}
		})
	}
}

func BenchmarkSpMMCSR_TransA(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := bandedCSR(b, n, 1, 1337)
			bb := bandedCSR(b, n, 1, 4242)
			c := bandedCSR(b, n, 2, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = ops.SpMMCSR(c, 0.5, 2, ops.Trans, a, ops.NoTrans, bb)
			}
		})
	}
}

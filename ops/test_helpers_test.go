// SPDX-License-Identifier: MIT

// Package ops_test: shared fixtures for kernel tests.
//
// The reference results for multiplication come from gonum's dense mat.Mul —
// an independent oracle, so a bug in one of our kernels cannot hide a bug
// in another.

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmat/dense"
	"github.com/katalvlaran/lvlmat/ops"
	"github.com/katalvlaran/lvlmat/sparse"
)

// mustDense builds a Dense from rectangular rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// csrFromRows builds a CSR whose pattern holds exactly the nonzero
// positions of rows. Zeros become structural zeros.
func csrFromRows(t testing.TB, rows [][]float64) *sparse.CSR {
	t.Helper()
	coo, err := sparse.NewCOO(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				require.NoError(t, coo.Push(i, j, v))
			}
		}
	}
	return coo.ToCSR()
}

// fullCSRFromRows builds a CSR storing EVERY position of rows, zeros
// included — the conventional destination for product kernels, whose
// output pattern must accommodate anything the multiplication produces.
func fullCSRFromRows(t testing.TB, rows [][]float64) *sparse.CSR {
	t.Helper()
	r, c := len(rows), len(rows[0])
	offs := make([]int, r+1)
	idxs := make([]int, 0, r*c)
	vals := make([]float64, 0, r*c)
	for i, row := range rows {
		offs[i+1] = offs[i] + c
		for j, v := range row {
			idxs = append(idxs, j)
			vals = append(vals, v)
		}
	}
	m, err := sparse.NewCSR(r, c, offs, idxs, vals)
	require.NoError(t, err)
	return m
}

// transposeRows returns the dense transpose of rows (test-side helper).
func transposeRows(rows [][]float64) [][]float64 {
	r, c := len(rows), len(rows[0])
	out := make([][]float64, c)
	for j := 0; j < c; j++ {
		out[j] = make([]float64, r)
		for i := 0; i < r; i++ {
			out[j][i] = rows[i][j]
		}
	}
	return out
}

// refAffineProduct computes β·C + α·op(A)·op(B) with gonum as the oracle.
func refAffineProduct(t testing.TB, c *dense.Dense, beta, alpha float64,
	transA ops.Transpose, a *dense.Dense, transB ops.Transpose, b *dense.Dense) *dense.Dense {
	t.Helper()

	var opA, opB mat.Matrix = a.ToGonum(), b.ToGonum()
	if transA.IsTrans() {
		opA = opA.T()
	}
	if transB.IsTrans() {
		opB = opB.T()
	}

	var prod mat.Dense
	prod.Mul(opA, opB)
	prod.Scale(alpha, &prod)

	var scaled mat.Dense
	scaled.Scale(beta, c.ToGonum())

	var out mat.Dense
	out.Add(&scaled, &prod)

	res, err := dense.FromGonum(&out)
	require.NoError(t, err)
	return res
}

// refAffineSum computes β·C + α·op(A) densely with gonum.
func refAffineSum(t testing.TB, c *dense.Dense, beta, alpha float64,
	transA ops.Transpose, a *dense.Dense) *dense.Dense {
	t.Helper()

	var opA mat.Matrix = a.ToGonum()
	if transA.IsTrans() {
		opA = opA.T()
	}
	var term mat.Dense
	term.Scale(alpha, opA)

	var scaled mat.Dense
	scaled.Scale(beta, c.ToGonum())

	var out mat.Dense
	out.Add(&scaled, &term)

	res, err := dense.FromGonum(&out)
	require.NoError(t, err)
	return res
}

// requireDenseEq asserts element-wise equality within a tight tolerance.
func requireDenseEq(t testing.TB, want, got *dense.Dense) {
	t.Helper()
	require.True(t, got.EqualApprox(want, 1e-12),
		"matrices differ:\ngot:\n%v\nwant:\n%v", got, want)
}

// SPDX-License-Identifier: MIT

// Package ops - sparse × dense multiplication into a dense destination.

package ops

import (
	"github.com/katalvlaran/lvlmat/dense"
	"github.com/katalvlaran/lvlmat/sparse"
)

// SpMMCSRDense computes C ← β·C + α·op(A)·op(B) fully in place, where A is
// sparse (CSR) and B, C are dense.
//
// MAIN DESCRIPTION:
//   - The algorithm splits on whether A is transposed, because CSR iterates
//     row-major and transposing A changes which output rows a stored entry
//     contributes to.
//
// Implementation:
//   - Stage 1 (Validate): dimension compatibility under the transpose
//     flags; a mismatch panics before C is touched.
//   - Stage 2a (A transposed, scatter form): pre-scale all of C by β in a
//     separate pass — transposed entries scatter across arbitrary output
//     rows, so a fused per-entry update is impossible. Then for each stored
//     A[k,i], γ = α·A[k,i] is accumulated into C row i against op(B) row k.
//   - Stage 2b (A as stored, dot form): for each output column j and row i,
//     dot = Σ_k A[i,k]·op(B)[k,j] over row i's stored entries only, and
//     C[i,j] = β·C[i,j] + α·dot in one fused write — no separate β pass.
//
// Behavior highlights:
//   - A and B are never mutated; C must not alias either (unsupported).
//   - The asymmetry between the two forms is intentional: it avoids
//     materializing a transposed copy of the sparse operand, at the price
//     of the extra β scaling pass in the scatter form. The β pass runs
//     unconditionally, mirroring the fused form's semantics exactly — a
//     β==1 skip would only change performance, never the output.
//
// Inputs:
//   - c: mutable dense destination; beta, alpha: scalars;
//   - transA, a: transpose flag + sparse operand;
//   - transB, b: transpose flag + dense operand.
//
// Returns: none — C is mutated in place. All failure here is a contract
// violation (dimension check), not a runtime condition.
//
// Determinism:
//   - Fixed loop orders: scatter form k→entry→j; dot form j→i→entry.
//
// Complexity:
//   - Time O(nnz(A)·cols(C)) both forms (+O(rows·cols) β pass when
//     transposed); Space O(1) beyond the operands.
//
// AI-Hints:
//   - β=0, α=1 computes a plain product into C regardless of C's prior
//     contents; β=1, α=0 leaves C unchanged.
func SpMMCSRDense(c *dense.Dense, beta, alpha float64, transA Transpose, a *sparse.CSR, transB Transpose, b *dense.Dense) {
	// Validate shape compatibility before any mutation (panics on mismatch).
	assertSpMMDims("SpMMCSRDense", c.Rows(), c.Cols(), a.Rows(), a.Cols(), b.Rows(), b.Cols(), transA, transB)

	cRows, cCols := c.Rows(), c.Cols()

	if transA.IsTrans() {
		// Scatter form: contributions land on arbitrary output rows, so C
		// must be pre-multiplied by beta in its own pass.
		c.Scale(beta)

		var k, j int
		for k = 0; k < a.Rows(); k++ {
			aCols, aVals := a.Row(k)
			for t, i := range aCols {
				// Stored A[k,i] becomes output row i after transposition.
				gamma := alpha * aVals[t]
				ci := c.RowView(i)
				if transB.IsTrans() {
					// op(B)[k,j] = B[j,k]: walk column k of B row-by-row.
					for j = 0; j < cCols; j++ {
						ci[j] += gamma * b.RowView(j)[k]
					}
				} else {
					bk := b.RowView(k) // contiguous row of B
					for j = 0; j < cCols; j++ {
						ci[j] += gamma * bk[j]
					}
				}
			}
		}
		return
	}

	// Dot form: each C[i,j] is finished in a single fused write, so no
	// separate beta pass is needed.
	var i, j int
	for j = 0; j < cCols; j++ {
		for i = 0; i < cRows; i++ {
			aCols, aVals := a.Row(i)
			dot := 0.0
			if transB.IsTrans() {
				bj := b.RowView(j) // op(B)[k,j] = B[j,k]
				for t, k := range aCols {
					dot += aVals[t] * bj[k]
				}
			} else {
				for t, k := range aCols {
					dot += aVals[t] * b.RowView(k)[j]
				}
			}
			ci := c.RowView(i)
			ci[j] = beta*ci[j] + alpha*dot // fused affine update
		}
	}
}

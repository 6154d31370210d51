// SPDX-License-Identifier: MIT

// Package ops - sparse × sparse multiplication with pattern-constrained
// accumulation.

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/sparse"
)

// borrowOrTranspose returns m itself when the flag is NoTrans (borrowed, no
// copy) and an owned, normalized transpose otherwise. The recursive
// untransposed call receives uniform access either way and never knows
// which variant it got.
func borrowOrTranspose(m *sparse.CSR, t Transpose) *sparse.CSR {
	if t.IsTrans() {
		return m.Transpose() // owned copy, local to this call
	}

	return m // borrowed original
}

// SpMMCSR computes C ← β·C + α·op(A)·op(B) in place, where A, B and C are
// all sparse. C's pattern must already contain every nonzero position the
// product can produce; the kernel never grows C's structure.
//
// Implementation:
//   - Stage 1 (Validate): dimension compatibility under both transpose
//     flags (panic on mismatch, before any mutation).
//   - Stage 2 (Both flags clear — the base case): classic row-wise sparse
//     GEMM. For each output row i: scale C's row values by β, then for each
//     stored A[i,k] walk B's row k and accumulate α·A[i,k]·B[k,j] into
//     column j of C's row. Output row i is thus the weighted sum of the
//     rows of B selected by A's row-i pattern. Column j is located with a
//     forward linear scan that restarts per B-row (B rows each ascend from
//     their own lowest column).
//   - Stage 3 (Any flag set): materialize owned transposes of exactly the
//     flagged operands (borrowOrTranspose) and recurse into the base case.
//     This trades a one-time transpose cost and memory for implementation
//     simplicity — the correctness baseline.
//
// Errors:
//   - ErrInvalidPattern (wrapped with the offending position) when a
//     computed product entry has no slot in C. Returns on the first
//     mismatch; rows already processed retain their updates (documented
//     partial-failure semantics, same as SpAddCSR).
//
// Determinism: fixed i→k→j traversal.
// Complexity: O(nnz(C) + Σ_i Σ_{k∈A_i} nnz(B_k)) for the base case, plus
// O(rows + cols + nnz) per materialized transpose.
//
// Notes:
//   - Workspace reuse across calls and a dedicated Aᵀ·B kernel are the
//     obvious next optimizations; the recursion keeps the surface small
//     until they are needed.
func SpMMCSR(c *sparse.CSR, beta, alpha float64, transA Transpose, a *sparse.CSR, transB Transpose, b *sparse.CSR) error {
	// Validate shape compatibility before any mutation (panics on mismatch).
	assertSpMMDims("SpMMCSR", c.Rows(), c.Cols(), a.Rows(), a.Cols(), b.Rows(), b.Cols(), transA, transB)

	if !transA.IsTrans() && !transB.IsTrans() {
		for i := 0; i < c.Rows(); i++ {
			cCols, cVals := c.RowMut(i)
			// Scale the destination row once per output row.
			for idx := range cVals {
				cVals[idx] *= beta
			}
			aCols, aVals := a.Row(i)
			for t, k := range aCols {
				alphaAik := alpha * aVals[t] // hoisted per A entry
				bCols, bVals := b.Row(k)
				pos := 0 // scan restarts: each B row ascends from scratch
				for s, j := range bCols {
					// Forward-only scan over C's sorted row.
					for pos < len(cCols) && cCols[pos] != j {
						pos++
					}
					if pos == len(cCols) {
						return fmt.Errorf("SpMMCSR: product entry (%d,%d): %w", i, j, ErrInvalidPattern)
					}
					cVals[pos] += alphaAik * bVals[s]
				}
			}
		}
		return nil
	}

	// Transposition is handled by explicitly precomputing transposed
	// operands and recursing without flags; the temporaries are local and
	// die with this call.
	aEff := borrowOrTranspose(a, transA)
	bEff := borrowOrTranspose(b, transB)

	return SpMMCSR(c, beta, alpha, NoTrans, aEff, NoTrans, bEff)
}

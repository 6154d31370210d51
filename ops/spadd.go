// SPDX-License-Identifier: MIT

// Package ops - pattern-preserving sparse addition.

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/sparse"
)

// SpAddCSR computes C ← β·C + α·op(A) in place, where both A and C are
// sparse. C's pattern must already contain every stored position of op(A);
// this kernel never grows C's structure.
//
// Implementation:
//   - Stage 1 (Validate): shape compatibility under transA (panic on
//     mismatch, before any mutation).
//   - Stage 2 (Fast path): when C and A share the identical pattern object
//     (pointer identity, O(1) — NOT structural equality), the operation
//     degenerates to an affine combination of the two flat value arrays in
//     entry order. No index searches at all.
//   - Stage 3a (General, A as stored): per row, scale C's values by β
//     (skipped when β == 1 — scaling by one is a no-op), then locate each
//     A column among C's remaining row entries with a forward linear scan.
//     Both rows are sorted, so the scan position only advances, never
//     rewinds, across the row.
//   - Stage 3b (General, A transposed): destination rows are unknown until
//     each source column is read, so β is applied to all of C up front
//     (again skipped when β == 1) and each op(A) entry (j, i) is located
//     via C.EntryMut — the direct lookup facility, not a row scan.
//
// Errors:
//   - ErrInvalidPattern (wrapped with the offending position) when an op(A)
//     entry has no slot in C. The kernel returns on the first mismatch;
//     rows processed before it RETAIN their updates. This partial-failure
//     semantics is deliberate — pre-validate with
//     sparse.Pattern.ContainsPattern or operate on a Clone for atomicity.
//
// Determinism: fixed row-major traversal of A in both general paths.
// Complexity: fast path O(nnz); general path O(nnz(C) + nnz(A)) per the
// advancing scan (transposed: O(nnz(A)·log rownnz(C)) lookups).
//
// Notes:
//   - The linear scan is a known-suboptimal baseline: when C's rows are
//     much longer than A's, exponential search over the remaining entries
//     would skip the needless visits. Kept simple until profiling demands it.
func SpAddCSR(c *sparse.CSR, beta, alpha float64, transA Transpose, a *sparse.CSR) error {
	// Validate shape compatibility before any mutation (panics on mismatch).
	assertSpAddDims("SpAddCSR", c.Rows(), c.Cols(), a.Rows(), a.Cols(), transA)

	// Fast path: identical pattern object — element-wise affine combination.
	if c.SamePattern(a) {
		cv, av := c.ValuesMut(), a.Values()
		for idx := range cv {
			cv[idx] = beta*cv[idx] + alpha*av[idx]
		}
		return nil
	}

	if transA.IsTrans() {
		// Entries do not arrive in C's row order: scale everything up front.
		if beta != 1 {
			cv := c.ValuesMut()
			for idx := range cv {
				cv[idx] *= beta
			}
		}
		for i := 0; i < a.Rows(); i++ {
			aCols, aVals := a.Row(i)
			for t, j := range aCols {
				// op(A) entry (j, i): direct lookup, destination row j.
				ref := c.EntryMut(j, i)
				if !ref.Stored() {
					return fmt.Errorf("SpAddCSR: op(A) entry (%d,%d): %w", j, i, ErrInvalidPattern)
				}
				ref.Add(alpha * aVals[t])
			}
		}
		return nil
	}

	// General path, A as stored: row-aligned merge.
	for i := 0; i < a.Rows(); i++ {
		cCols, cVals := c.RowMut(i)
		if beta != 1 { // skip the no-op scaling by one
			for idx := range cVals {
				cVals[idx] *= beta
			}
		}
		aCols, aVals := a.Row(i)
		pos := 0 // forward-only scan position into C's row
		for t, j := range aCols {
			// Sorted rows guarantee the target never lies behind pos.
			// TODO: exponential search when len(cCols) >> len(aCols).
			for pos < len(cCols) && cCols[pos] != j {
				pos++
			}
			if pos == len(cCols) {
				return fmt.Errorf("SpAddCSR: A entry (%d,%d): %w", i, j, ErrInvalidPattern)
			}
			cVals[pos] += alpha * aVals[t]
		}
	}

	return nil
}

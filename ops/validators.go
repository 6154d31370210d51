// SPDX-License-Identifier: MIT
// Package: ops
//
// Purpose:
//  - Provide a single, canonical source of truth for kernel precondition
//    checks (dimension compatibility under transpose flags).
//  - Keep kernels minimal by delegating all shape math here.
//
// Policy:
//  - Dimension incompatibility is a programmer error in the caller, not a
//    recoverable runtime condition. These helpers therefore PANIC, and they
//    run before any mutation of the destination — a failed check leaves C
//    untouched. This is the one place in lvlmat where panics are the
//    documented contract (mirrors the package-wide "panics are reserved for
//    programmer errors" rule).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package ops

import "fmt"

// assertDimsEq panics with a uniform message when got != want.
func assertDimsEq(kernel, what string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("ops: %s: dimension mismatch: %s: got %d, want %d",
			kernel, what, got, want))
	}
}

// assertSpMMDims validates C(rc×cc) = op(A)(ra×ca) · op(B)(rb×cb):
// inner dimensions must agree and C must match the outer ones.
// Complexity: O(1).
func assertSpMMDims(kernel string, rc, cc, ra, ca, rb, cb int, transA, transB Transpose) {
	opRA, opCA := opShape(ra, ca, transA)
	opRB, opCB := opShape(rb, cb, transB)
	assertDimsEq(kernel, "op(A) cols vs op(B) rows", opCA, opRB)
	assertDimsEq(kernel, "C rows vs op(A) rows", rc, opRA)
	assertDimsEq(kernel, "C cols vs op(B) cols", cc, opCB)
}

// assertSpAddDims validates C(rc×cc) = op(A)(ra×ca) shape agreement.
// Complexity: O(1).
func assertSpAddDims(kernel string, rc, cc, ra, ca int, transA Transpose) {
	opRA, opCA := opShape(ra, ca, transA)
	assertDimsEq(kernel, "C rows vs op(A) rows", rc, opRA)
	assertDimsEq(kernel, "C cols vs op(A) cols", cc, opCA)
}

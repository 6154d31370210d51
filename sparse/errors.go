// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No constructor panics on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> offsets -> index range -> ordering/duplicates -> value alignment.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate shape before any allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrIndexOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers and builders MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrBadOffsets indicates a malformed CSR offsets array: wrong length,
	// first element nonzero, non-monotone run, or last element not equal to
	// the number of stored entries.
	ErrBadOffsets = errors.New("sparse: malformed row offsets")

	// ErrUnsortedIndices indicates that column indices within a row are not
	// strictly ascending.
	ErrUnsortedIndices = errors.New("sparse: column indices not sorted")

	// ErrDuplicateEntry indicates that the same (row, col) position appears
	// more than once where uniqueness is required.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrValuesLength indicates that a values array is not aligned 1:1 with
	// the pattern entries it is supposed to back.
	ErrValuesLength = errors.New("sparse: values length mismatch")

	// ErrNilMatrix indicates that a nil receiver or argument was used.
	ErrNilMatrix = errors.New("sparse: nil receiver")
)

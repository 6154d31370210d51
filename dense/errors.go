// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// Messages are prefixed "dense: ..." for grep-ability; match via errors.Is.

package dense

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows<=0, cols<=0, or ragged/misaligned input data).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil receiver")
)

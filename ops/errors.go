// SPDX-License-Identifier: MIT
// Package ops: sentinel error set (unified, consistent).
// Kernels return these sentinels wrapped with operand context; tests match
// via errors.Is. Dimension mismatches are NOT errors — they are programmer
// mistakes and panic before any mutation (see validators.go).

package ops

import "errors"

// ErrInvalidPattern indicates a structural mismatch: an input or computed
// nonzero position has no corresponding slot in the destination pattern.
// Kernels return immediately on the first such position; the destination
// may be left partially updated (documented, not rolled back).
var ErrInvalidPattern = errors.New("ops: entry not present in destination pattern")

// SPDX-License-Identifier: MIT

// Package ops: operand modifier types shared by all kernels.
package ops

// Transpose tags an operand as logically transposed without altering its
// physical storage. op(X) reads X when the flag is NoTrans and Xᵀ when it
// is Trans.
type Transpose bool

const (
	// NoTrans leaves the operand as stored.
	NoTrans Transpose = false

	// Trans treats the operand as transposed.
	Trans Transpose = true
)

// IsTrans reports the flag as a plain bool, mirroring the op(·) notation in
// kernel doc comments. Complexity: O(1).
func (t Transpose) IsTrans() bool { return bool(t) }

// opShape returns the dimensions of op(X) for an X of shape rows×cols.
// Complexity: O(1).
func opShape(rows, cols int, t Transpose) (int, int) {
	if t.IsTrans() {
		return cols, rows
	}

	return rows, cols
}

// SPDX-License-Identifier: MIT

// Package sparse - CSR matrix storage & safe accessors.
//
// Purpose:
//   - Pair an immutable shared *Pattern with a values array aligned 1:1 with
//     the pattern's flat entry order.
//   - Expose exactly the capabilities the arithmetic kernels in ops/ need:
//     per-row views (columns + values), mutable row views, discriminated
//     entry lookup, O(1) pattern-identity comparison, and an owned
//     normalized transpose.
//   - Guarantee safety at the public surface: constructors return errors;
//     panics are reserved for programmer errors (row index out of bounds in
//     view accessors, same policy as slice indexing).
//
// AI-Hints:
//   - Build several matrices over one *Pattern (NewCSRFromPattern) when they
//     share structure; ops.SpAddCSR then degenerates to a flat array sweep.
//   - Row/RowMut return zero-copy views; treat the column slice as read-only.
//
// Complexity quicksheet:
//   - NewCSR: O(rows + nnz) validation; Row/RowMut: O(1);
//     Entry/EntryMut: O(log rownnz); Transpose: O(rows + cols + nnz).

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/dense"
)

// csrErrorf wraps an underlying sentinel with constructor/method context.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CSR is a sparse matrix in Compressed Sparse Row form.
//
// The pattern is shared by pointer and never mutated; values is owned and
// aligned 1:1 with the pattern's flat entry order. A stored value may be 0 —
// that is still a stored entry, distinct from a structural zero.
type CSR struct {
	pattern *Pattern  // shared, immutable structure
	values  []float64 // owned, len == pattern.NNZ()
}

// NewCSR builds and validates a CSR matrix from raw parts.
//
// Implementation:
//   - Stage 1 (Validate): delegate structural validation to NewPattern.
//   - Stage 2 (Align): values must match the entry count exactly.
//   - Stage 3 (Finalize): copy values into owned storage and return.
//
// Errors: every NewPattern sentinel, plus ErrValuesLength.
// Complexity: O(rows + nnz).
func NewCSR(rows, cols int, rowOffsets, colIndices []int, values []float64) (*CSR, error) {
	// Validate the structure once; the matrix reuses it forever after.
	p, err := NewPattern(rows, cols, rowOffsets, colIndices)
	if err != nil {
		return nil, csrErrorf("NewCSR", err)
	}
	// Values must align 1:1 with pattern entries.
	if len(values) != p.NNZ() {
		return nil, csrErrorf("NewCSR", ErrValuesLength)
	}
	// Own the values; callers may reuse their slice.
	vals := make([]float64, len(values))
	copy(vals, values)

	return &CSR{pattern: p, values: vals}, nil
}

// NewCSRFromPattern builds a matrix sharing p (by pointer) with the given
// values. Pass nil values to get an all-zero matrix over p.
//
// Sharing the pointer is the point: matrices built from one *Pattern are
// structurally identical in O(1) (see SamePattern), which ops.SpAddCSR
// exploits as a fast path.
//
// Errors: ErrNilMatrix (nil pattern), ErrValuesLength.
// Complexity: O(nnz) for the values copy/zeroing.
func NewCSRFromPattern(p *Pattern, values []float64) (*CSR, error) {
	if p == nil {
		return nil, csrErrorf("NewCSRFromPattern", ErrNilMatrix)
	}
	// nil values means "zero-initialized over this pattern".
	if values == nil {
		return &CSR{pattern: p, values: make([]float64, p.NNZ())}, nil
	}
	if len(values) != p.NNZ() {
		return nil, csrErrorf("NewCSRFromPattern", ErrValuesLength)
	}
	vals := make([]float64, len(values))
	copy(vals, values)

	return &CSR{pattern: p, values: vals}, nil
}

// Identity returns the n×n identity matrix with a fully stored diagonal.
//
// Errors: ErrBadShape for n <= 0.
// Complexity: O(n).
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, csrErrorf("Identity", ErrBadShape)
	}
	offs := make([]int, n+1)
	idxs := make([]int, n)
	vals := make([]float64, n)
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		offs[i+1] = i + 1
		idxs[i] = i
		vals[i] = 1.0
	}

	return &CSR{
		pattern: &Pattern{rows: n, cols: n, offsets: offs, indices: idxs},
		values:  vals,
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.pattern.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.pattern.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.values) }

// Pattern returns the shared sparsity pattern. The pattern is immutable;
// holding the pointer is safe for the lifetime of the program.
// Complexity: O(1).
func (m *CSR) Pattern() *Pattern { return m.pattern }

// SamePattern reports whether m and other share the identical pattern
// object. This is pointer identity, NOT structural equality — use
// Pattern().Equal for the by-value comparison.
// Complexity: O(1).
func (m *CSR) SamePattern(other *CSR) bool {
	return m.pattern == other.pattern
}

// Row returns row i as zero-copy views: sorted column indices and the
// aligned values. Callers MUST NOT mutate either slice; use RowMut for
// value mutation. Row index bounds are a programmer responsibility.
// Complexity: O(1), zero allocations.
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	start, end := m.pattern.RowRange(i)
	return m.pattern.indices[start:end], m.values[start:end]
}

// RowMut returns row i with a mutable values view. The column slice remains
// read-only (the pattern is shared and immutable).
// Complexity: O(1), zero allocations.
func (m *CSR) RowMut(i int) (cols []int, vals []float64) {
	start, end := m.pattern.RowRange(i)
	return m.pattern.indices[start:end], m.values[start:end]
}

// Values returns the flat values array in pattern entry order (read-only).
// Complexity: O(1).
func (m *CSR) Values() []float64 { return m.values }

// ValuesMut returns the flat values array for in-place mutation.
// The caller may rewrite values but can never change the structure.
// Complexity: O(1).
func (m *CSR) ValuesMut() []float64 { return m.values }

// Entry returns the value stored at (i, j) and whether the position is
// stored at all. A false second return means structural zero.
// Complexity: O(log rownnz).
func (m *CSR) Entry(i, j int) (float64, bool) {
	if k, ok := m.pattern.Index(i, j); ok {
		return m.values[k], true
	}

	return 0, false
}

// EntryRef refers to a single stored slot of a CSR matrix, or to a
// structural zero. The discrimination is explicit: callers must check
// Stored() before reading or writing, which makes "position not present"
// impossible to ignore — there is no silent insertion path.
type EntryRef struct {
	ptr *float64 // nil for a structural zero
}

// Stored reports whether the reference points at a stored entry.
// Complexity: O(1).
func (r EntryRef) Stored() bool { return r.ptr != nil }

// Value returns the referenced value. Calling Value on a structural zero is
// a programmer error and panics.
func (r EntryRef) Value() float64 { return *r.ptr }

// Set overwrites the referenced value. Panics on a structural zero:
// growing the pattern mid-operation is unsupported by design.
func (r EntryRef) Set(v float64) { *r.ptr = v }

// Add accumulates v into the referenced value. Panics on a structural zero.
func (r EntryRef) Add(v float64) { *r.ptr += v }

// EntryMut looks up position (i, j) for mutation.
//
// Returns an EntryRef that is either a stored slot (mutable in place) or a
// structural zero. Kernels use this for transposed accumulation, where the
// destination row is not known until the source column has been read.
// Complexity: O(log rownnz).
func (m *CSR) EntryMut(i, j int) EntryRef {
	if k, ok := m.pattern.Index(i, j); ok {
		return EntryRef{ptr: &m.values[k]}
	}

	return EntryRef{} // structural zero
}

// Transpose returns an owned, normalized transpose of m: a fresh pattern
// (sorted rows, no sharing with m) and values permuted to match.
//
// Implementation:
//   - Stage 1: transpose the pattern via counting sort (see Pattern).
//   - Stage 2: apply the returned permutation to the values array.
//
// Determinism: output columns ascend because the scatter walks source rows
// in ascending order.
// Complexity: O(rows + cols + nnz) time, O(cols + nnz) memory.
func (m *CSR) Transpose() *CSR {
	tp, perm := m.pattern.transposed()
	vals := make([]float64, len(m.values))
	for dst, src := range perm {
		vals[dst] = m.values[src] // move each value to its transposed slot
	}

	return &CSR{pattern: tp, values: vals}
}

// Clone returns a deep copy of the values sharing the same pattern pointer.
// Sharing is safe (patterns are immutable) and keeps SamePattern true
// between a matrix and its clone.
// Complexity: O(nnz).
func (m *CSR) Clone() *CSR {
	vals := make([]float64, len(m.values))
	copy(vals, m.values)

	return &CSR{pattern: m.pattern, values: vals}
}

// ToDense materializes m as a dense row-major matrix. Structural zeros
// become dense zeros; stored zeros are indistinguishable in the output.
// Complexity: O(rows*cols) zeroing + O(nnz) scatter.
func (m *CSR) ToDense() *dense.Dense {
	// Shape was validated at construction; the error path is unreachable.
	d, _ := dense.NewDense(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		cols, vals := m.Row(i)
		row := d.RowView(i)
		for k, j := range cols {
			row[j] = vals[k] // scatter stored entries into the dense row
		}
	}

	return d
}

// String implements fmt.Stringer for debugging: shape, nnz and per-row
// (col:value) listings. Complexity: O(rows + nnz).
func (m *CSR) String() string {
	s := fmt.Sprintf("CSR %dx%d nnz=%d\n", m.Rows(), m.Cols(), m.NNZ())
	for i := 0; i < m.Rows(); i++ {
		cols, vals := m.Row(i)
		s += fmt.Sprintf("row %d:", i)
		for k, j := range cols {
			s += fmt.Sprintf(" (%d:%g)", j, vals[k])
		}
		s += "\n"
	}

	return s
}

// SPDX-License-Identifier: MIT

// Package sparse - immutable CSR sparsity patterns.
//
// Purpose:
//   - Represent the set of stored (row, col) positions of a CSR matrix,
//     decoupled from the values, so multiple matrices can share one pattern.
//   - Validate structure exactly once at construction; every accessor after
//     that is allocation-free and never re-checks invariants.
//   - Make structural identity an O(1) question: two CSR matrices share a
//     pattern iff they hold the same *Pattern pointer.
//
// Determinism & Performance:
//   - Row-major layout: offsets (len rows+1) into a flat indices array.
//   - Column indices are strictly ascending within each row (no duplicates).
//   - Validation is a single O(rows + nnz) pass; range/duplicate detection
//     in unsorted contexts uses a reusable bitset scratch.
//
// AI-Hints:
//   - Share one *Pattern across matrices with identical structure to unlock
//     the value-array fast paths in ops.SpAddCSR.
//   - Use ContainsPattern before a kernel call when you need all-or-nothing
//     semantics: kernels stop mid-way on the first structural mismatch.

package sparse

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// patternErrorf wraps an underlying sentinel with constructor context.
func patternErrorf(tag string, err error) error {
	// Provides consistent error tagging for all pattern validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// Pattern is an immutable CSR sparsity pattern.
//
// Invariants (established at construction, relied upon everywhere):
//   - rows >= 1, cols >= 1
//   - len(offsets) == rows+1, offsets[0] == 0, offsets non-decreasing,
//     offsets[rows] == len(indices)
//   - indices[offsets[i]:offsets[i+1]] strictly ascending, each in [0, cols)
//
// A Pattern is shared by pointer: CSR matrices built from the same Pattern
// value hold the same pointer, which ops/ uses for O(1) identity checks.
type Pattern struct {
	rows, cols int   // logical dimensions
	offsets    []int // per-row extents into indices; len == rows+1
	indices    []int // flat column indices; len == NNZ
}

// NewPattern builds and validates a Pattern from raw CSR structure.
//
// Implementation:
//   - Stage 1 (Validate shape): rows/cols must be positive.
//   - Stage 2 (Validate offsets): length, zero start, monotone, nnz-terminal.
//   - Stage 3 (Validate indices): per-row strict ascent and column range.
//   - Stage 4 (Finalize): copy inputs into owned storage and return.
//
// Inputs are copied, never aliased: callers may reuse their slices freely.
//
// Errors:
//   - ErrBadShape, ErrBadOffsets, ErrIndexOutOfRange, ErrUnsortedIndices,
//     ErrDuplicateEntry (equal adjacent columns).
//
// Complexity: O(rows + nnz) time, O(rows + nnz) memory for the owned copy.
func NewPattern(rows, cols int, offsets, indices []int) (*Pattern, error) {
	// Validate logical shape first (cheapest check, highest priority).
	if rows <= 0 || cols <= 0 {
		return nil, patternErrorf("NewPattern", ErrBadShape)
	}
	// Validate offsets envelope: length and boundary values.
	if len(offsets) != rows+1 || offsets[0] != 0 || offsets[rows] != len(indices) {
		return nil, patternErrorf("NewPattern", ErrBadOffsets)
	}

	var i, k, prev int // loop iterators and the previous column in a row
	for i = 0; i < rows; i++ {
		// Offsets must never decrease.
		if offsets[i+1] < offsets[i] {
			return nil, patternErrorf("NewPattern", ErrBadOffsets)
		}
		prev = -1 // sentinel: no column seen yet in this row
		for k = offsets[i]; k < offsets[i+1]; k++ {
			j := indices[k]
			// Range check before ordering checks (documented priority).
			if j < 0 || j >= cols {
				return nil, patternErrorf("NewPattern", ErrIndexOutOfRange)
			}
			// Equal adjacent columns are duplicates; descending is unsorted.
			if j == prev {
				return nil, patternErrorf("NewPattern", ErrDuplicateEntry)
			}
			if j < prev {
				return nil, patternErrorf("NewPattern", ErrUnsortedIndices)
			}
			prev = j // advance the ascent watermark
		}
	}

	// Copy into owned storage so the Pattern is immune to caller mutation.
	offs := make([]int, len(offsets))
	copy(offs, offsets)
	idxs := make([]int, len(indices))
	copy(idxs, indices)

	return &Pattern{rows: rows, cols: cols, offsets: offs, indices: idxs}, nil
}

// emptyPattern returns a pattern with the given shape and no entries.
// Shape validity is the caller's responsibility (private helper).
func emptyPattern(rows, cols int) *Pattern {
	return &Pattern{rows: rows, cols: cols, offsets: make([]int, rows+1)}
}

// Rows returns the number of rows. Complexity: O(1).
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of columns. Complexity: O(1).
func (p *Pattern) Cols() int { return p.cols }

// NNZ returns the number of stored positions. Complexity: O(1).
func (p *Pattern) NNZ() int { return len(p.indices) }

// RowNNZ returns the number of stored positions in row i.
// Bounds are the caller's responsibility (valid by kernel loop construction).
// Complexity: O(1).
func (p *Pattern) RowNNZ(i int) int { return p.offsets[i+1] - p.offsets[i] }

// RowIndices returns the column indices of row i as a read-only view into
// the pattern's backing array. Callers MUST NOT mutate the returned slice.
// Complexity: O(1), zero allocations.
func (p *Pattern) RowIndices(i int) []int {
	return p.indices[p.offsets[i]:p.offsets[i+1]]
}

// RowRange returns [start, end) positions of row i in the flat entry order.
// Useful to address the aligned values array of a CSR matrix.
// Complexity: O(1).
func (p *Pattern) RowRange(i int) (start, end int) {
	return p.offsets[i], p.offsets[i+1]
}

// Index locates position (i, j) in the flat entry order.
//
// Returns (flat index, true) when (i, j) is stored, and (0, false) for a
// structural zero. Binary search over the sorted row.
//
// Errors: none — out-of-range i/j simply reports "not stored" for j;
// an out-of-range i is a programmer error and panics via slice bounds.
// Complexity: O(log RowNNZ(i)).
func (p *Pattern) Index(i, j int) (int, bool) {
	start, end := p.offsets[i], p.offsets[i+1]
	row := p.indices[start:end]
	// Binary search: rows are strictly ascending by construction.
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return start + k, true
	}

	return 0, false
}

// Equal reports structural equality by value: same shape, same offsets,
// same indices. Use pointer comparison for the O(1) identity fast path;
// Equal is the O(rows + nnz) fallback when pointers differ.
//
// Complexity: O(rows + nnz) worst case, O(1) when pointers are identical.
func (p *Pattern) Equal(q *Pattern) bool {
	// Identity fast path: shared patterns are trivially equal.
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	// Shape and entry-count gates before element-wise comparison.
	if p.rows != q.rows || p.cols != q.cols || len(p.indices) != len(q.indices) {
		return false
	}
	for i := range p.offsets {
		if p.offsets[i] != q.offsets[i] {
			return false
		}
	}
	for k := range p.indices {
		if p.indices[k] != q.indices[k] {
			return false
		}
	}

	return true
}

// ContainsPattern reports whether every stored position of q is also stored
// in p. Shapes must match exactly; a shape mismatch reports false.
//
// Implementation:
//   - Stage 1: O(1) gates (identity, shape, entry counts).
//   - Stage 2: per-row membership test. Each row of p is loaded into a
//     reusable bitset scratch (one bit per column), then q's row columns
//     are probed in O(1) each.
//
// AI-Hints:
//   - Call this before ops.SpAddCSR / ops.SpMMCSR when you need atomicity:
//     kernels stop on the first structural mismatch and leave earlier rows
//     updated. Pre-validating containment removes that failure mode.
//
// Complexity: O(rows * cols/64 + nnz(p) + nnz(q)) time, O(cols) bits scratch.
func (p *Pattern) ContainsPattern(q *Pattern) bool {
	// Identity fast path: a pattern always contains itself.
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	if p.rows != q.rows || p.cols != q.cols {
		return false
	}
	// A superset can never hold fewer entries.
	if len(p.indices) < len(q.indices) {
		return false
	}

	// One bitset reused across rows; ClearAll is O(cols/64) per row.
	scratch := bitset.New(uint(p.cols))
	for i := 0; i < p.rows; i++ {
		scratch.ClearAll()
		for _, j := range p.RowIndices(i) {
			scratch.Set(uint(j)) // mark p's stored columns for row i
		}
		for _, j := range q.RowIndices(i) {
			if !scratch.Test(uint(j)) {
				return false // q stores a column p does not
			}
		}
	}

	return true
}

// transposed returns the transposed pattern together with the permutation
// that maps each entry of the transposed layout back to its source position
// in p's flat entry order (perm[destination] = source).
//
// Counting-sort construction: count entries per column, prefix-sum into
// offsets, then scatter. Output rows are automatically sorted because the
// scatter walks p's rows in ascending order.
//
// Complexity: O(rows + cols + nnz) time, O(cols + nnz) memory.
func (p *Pattern) transposed() (*Pattern, []int) {
	nnz := len(p.indices)
	offs := make([]int, p.cols+1) // offsets of the transposed pattern
	idxs := make([]int, nnz)      // row indices of p become columns here
	perm := make([]int, nnz)      // destination -> source entry mapping

	// Pass 1: histogram of entries per source column.
	for _, j := range p.indices {
		offs[j+1]++
	}
	// Pass 2: exclusive prefix sums turn counts into offsets.
	for j := 0; j < p.cols; j++ {
		offs[j+1] += offs[j]
	}
	// Pass 3: scatter. cursor tracks the next free slot per destination row.
	cursor := make([]int, p.cols)
	copy(cursor, offs[:p.cols])
	var i, k int
	for i = 0; i < p.rows; i++ {
		for k = p.offsets[i]; k < p.offsets[i+1]; k++ {
			j := p.indices[k]
			dst := cursor[j]
			idxs[dst] = i  // transposed entry (j, i)
			perm[dst] = k  // remember where the value lives in p's order
			cursor[j]++    // advance the per-row write head
		}
	}

	return &Pattern{rows: p.cols, cols: p.rows, offsets: offs, indices: idxs}, perm
}

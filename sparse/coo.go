// SPDX-License-Identifier: MIT

// Package sparse - COO (triplet) assembly.
//
// Purpose:
//   - Provide the ergonomic construction path: append (i, j, v) triplets in
//     any order, possibly with repeats, then convert once to CSR.
//   - Duplicate positions are summed during conversion, the conventional
//     assembly semantics for finite-element style workflows.
//
// Complexity quicksheet:
//   - Push: amortized O(1); ToCSR: O(nnz log nnz) sort + O(rows + nnz) build.

package sparse

import "sort"

// COO is an append-only triplet builder for sparse matrices.
// Triplets may arrive in any order; duplicates are legal and are summed by
// ToCSR. The zero value is not usable — construct via NewCOO.
type COO struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	values     []float64
}

// NewCOO creates an empty rows×cols triplet builder.
// Errors: ErrBadShape for non-positive dimensions.
// Complexity: O(1).
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf("NewCOO", ErrBadShape)
	}

	return &COO{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (c *COO) Rows() int { return c.rows }

// Cols returns the number of columns. Complexity: O(1).
func (c *COO) Cols() int { return c.cols }

// NNZ returns the number of triplets pushed so far (duplicates counted).
// Complexity: O(1).
func (c *COO) NNZ() int { return len(c.values) }

// Push appends the triplet (i, j, v).
// Errors: ErrIndexOutOfRange when (i, j) is outside the declared shape.
// Complexity: amortized O(1).
func (c *COO) Push(i, j int, v float64) error {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return csrErrorf("COO.Push", ErrIndexOutOfRange)
	}
	c.rowIdx = append(c.rowIdx, i)
	c.colIdx = append(c.colIdx, j)
	c.values = append(c.values, v)

	return nil
}

// ToCSR converts the accumulated triplets into a CSR matrix, summing
// duplicate positions. The builder is left untouched and may keep growing.
//
// Implementation:
//   - Stage 1: sort a permutation of triplet order by (row, col).
//   - Stage 2: single merge pass — emit each distinct position once,
//     accumulating values of equal positions.
//   - Stage 3: assemble offsets from per-row counts.
//
// Determinism: sort.SliceStable keeps insertion order among equals, so
// floating-point summation order is reproducible across runs.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func (c *COO) ToCSR() *CSR {
	n := len(c.values)
	perm := make([]int, n)
	for k := range perm {
		perm[k] = k
	}
	// Stable sort keeps duplicate accumulation order deterministic.
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := perm[a], perm[b]
		if c.rowIdx[ka] != c.rowIdx[kb] {
			return c.rowIdx[ka] < c.rowIdx[kb]
		}
		return c.colIdx[ka] < c.colIdx[kb]
	})

	offs := make([]int, c.rows+1)
	idxs := make([]int, 0, n)
	vals := make([]float64, 0, n)
	prevRow, prevCol := -1, -1 // sentinel: no position emitted yet
	for _, k := range perm {
		i, j, v := c.rowIdx[k], c.colIdx[k], c.values[k]
		if i == prevRow && j == prevCol {
			vals[len(vals)-1] += v // duplicate position: accumulate
			continue
		}
		idxs = append(idxs, j)
		vals = append(vals, v)
		offs[i+1]++ // count the distinct entry against its row
		prevRow, prevCol = i, j
	}
	// Prefix sums turn per-row counts into CSR offsets.
	for i := 0; i < c.rows; i++ {
		offs[i+1] += offs[i]
	}

	return &CSR{
		pattern: &Pattern{rows: c.rows, cols: c.cols, offsets: offs, indices: idxs},
		values:  vals,
	}
}

// SPDX-License-Identifier: MIT

// Package dense - gonum interop bridges.
//
// Purpose:
//   - Let callers move between lvlmat's Dense and gonum's mat.Dense without
//     hand-rolled copy loops; gonum is the de-facto dense algebra stack in
//     Go and the natural counterpart for anything this package does not do
//     (factorizations, BLAS-backed products, ...).
//
// AI-Hints:
//   - The bridges copy; they never alias gonum's backing storage. Use them
//     at boundaries, not inside hot loops.

package dense

import "gonum.org/v1/gonum/mat"

// FromGonum copies src into a freshly allocated Dense.
// Errors: ErrBadShape when src has a zero dimension.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		row := out.RowView(i)
		for j := 0; j < c; j++ {
			row[j] = src.At(i, j) // element-wise copy, fixed i→j order
		}
	}

	return out, nil
}

// ToGonum copies m into a freshly allocated gonum mat.Dense.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

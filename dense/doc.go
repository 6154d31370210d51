// Package dense provides the row-major dense matrix container consumed by
// the arithmetic kernels in ops/.
//
// 🚀 What is dense?
//
//	A deliberately small float64 matrix: a flat row-major buffer with safe
//	indexed access, zero-copy row views, in-place uniform scaling, and
//	bridges to gonum.org/v1/gonum/mat for interop with the wider Go
//	numeric ecosystem.
//
// ✨ Key guarantees:
//   - At/Set return errors instead of panicking (errors.Is friendly).
//   - RowView exposes the backing row without copying; hot loops in ops/
//     run entirely on these views.
//   - Deterministic layout: element (i, j) lives at i*cols + j, always.
//
// ⚙️ Usage:
//
//	B, _ := dense.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	C, _ := dense.NewDense(2, 2)
//	// hand B and C to ops.SpMMCSRDense ...
//
// For sparse storage see sparse/; for the kernels see ops/.
package dense

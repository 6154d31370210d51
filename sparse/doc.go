// Package sparse provides Compressed Sparse Row (CSR) matrices, immutable
// shared sparsity patterns, and COO (triplet) assembly.
//
// 🚀 What is sparse?
//
//	The storage half of lvlmat: it owns the containers that the arithmetic
//	kernels in ops/ consume.
//	  • Pattern — an immutable set of (row, col) positions in CSR layout:
//	    per-row column indices, strictly ascending, no duplicates.
//	  • CSR     — a Pattern plus a values array aligned 1:1 with its entries.
//	    Patterns are shared by pointer across matrices, so "do these two
//	    matrices have exactly the same structure?" is an O(1) check.
//	  • COO     — an append-only triplet builder with duplicate-summing
//	    conversion to CSR, the ergonomic way to assemble a matrix.
//
// ✨ Key guarantees:
//   - Patterns are immutable after construction; sharing is always safe.
//   - Construction validates everything once (offsets, ordering, ranges),
//     so accessors and kernels never re-validate in hot loops.
//   - Entry lookup returns an explicit stored/structural-zero result;
//     there is no silent insertion, ever.
//   - Deterministic iteration: rows in order, columns ascending.
//
// ⚙️ Usage:
//
//	coo, _ := sparse.NewCOO(2, 2)
//	_ = coo.Push(0, 0, 2)
//	_ = coo.Push(1, 1, 3)
//	A := coo.ToCSR() // [[2,0],[0,3]]
//
// Structural zeros vs stored zeros: a stored entry may hold the value 0 and
// remains part of the pattern; a structural zero is the absence of a slot.
// Kernels in ops/ rely on this distinction and never grow a pattern.
//
// See ops/ for the arithmetic contracts and dense/ for the dense side.
package sparse

// Package lvlmat is a compact sparse linear algebra toolkit built around
// the Compressed Sparse Row (CSR) representation.
//
// 🚀 What is lvlmat?
//
//	A deterministic, dependency-light library that brings together:
//		• sparse/ — CSR matrices, shared sparsity patterns, COO assembly
//		• dense/  — row-major dense matrices with safe accessors & gonum bridges
//		• ops/    — serial arithmetic kernels:
//		    - SpMMCSRDense: C ← β·C + α·op(A)·op(B), A sparse, B/C dense
//		    - SpAddCSR:     C ← β·C + α·op(A),        A and C sparse
//		    - SpMMCSR:      C ← β·C + α·op(A)·op(B), all operands sparse
//
// ✨ Why choose lvlmat?
//
//   - Pattern-first design – sparsity patterns are immutable and shared,
//     unlocking O(1) structural-identity fast paths
//   - Rock-solid guarantees – sentinel errors, errors.Is discipline,
//     deterministic loop orders, no hidden allocations in hot paths
//   - Pure Go – no cgo, no assembly, no hidden deps
//   - Honest contracts – kernels never grow a destination pattern; a
//     structural mismatch is reported, never silently papered over
//
// The kernels follow the BLAS-like update form C ← β·C + α·op(A)·op(B),
// where op(·) optionally transposes an operand without touching its storage.
// Transposition of the sparse-sparse product is reduced to the untransposed
// case via explicit, owned transposes — simple first, fast later.
//
// Quick ASCII example:
//
//	    ⎡2 0⎤   ⎡1 2⎤   ⎡2  4⎤
//	    ⎣0 3⎦ · ⎣3 4⎦ = ⎣9 12⎦
//
//	a diagonal CSR times a dense 2×2, computed by ops.SpMMCSRDense.
//
// Dive into the package docs of sparse, dense and ops for contracts,
// complexity notes and usage patterns.
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat

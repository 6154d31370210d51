// Package ops implements the serial arithmetic kernels of lvlmat over CSR
// and dense operands.
//
// 🚀 What is ops?
//
//	Three independent kernels sharing the BLAS-like update form
//	C ← β·C + α·op(A)·op(B) (or C ← β·C + α·op(A) for addition), where
//	op(·) optionally transposes an operand without touching its storage:
//	  • SpMMCSRDense — sparse × dense into a dense destination
//	  • SpAddCSR     — sparse + sparse, pattern-preserving, in place
//	  • SpMMCSR      — sparse × sparse into a pre-patterned sparse C
//
// ✨ Contracts at a glance:
//   - Kernels never mutate A or B and never grow C's pattern.
//   - Dimension incompatibility is a programmer error: kernels panic before
//     touching C (same policy as aliasing C with A or B, which is
//     unsupported).
//   - A structural mismatch — an entry with no slot in C — is a recoverable
//     error: errors.Is(err, ErrInvalidPattern). The kernel returns on the
//     first mismatch; rows already processed keep their updates. Callers
//     needing atomicity should pre-validate containment
//     (sparse.Pattern.ContainsPattern) or work on a scratch clone.
//
// ⚙️ Usage:
//
//	// C ← 1·C + 2·Aᵀ·B, all sparse:
//	err := ops.SpMMCSR(C, 1, 2, ops.Trans, A, ops.NoTrans, B)
//
// Concurrency: kernels are synchronous and stateless; they assume exclusive
// write access to C and read-only access to A/B for the duration of the
// call. Partition independent row ranges yourself if you want parallelism.
//
// Performance notes: column lookups inside a destination row use a
// forward-advancing linear scan over the sorted indices — simple to verify,
// linear in row length. Replacing it with exponential search for long,
// mismatched rows is a known extension point. The transposed sparse-sparse
// cases materialize owned transposes and recurse; workspace reuse and a
// dedicated Aᵀ·B kernel are likewise future work.
package ops

// SPDX-License-Identifier: MIT

// Package matrix provides generic, owned dense matrices and the
// linear-algebra kernels every solver in this module is built on.
//
// 🚀 What is matrix?
//
//	The storage and arithmetic foundation of densolve:
//	  • Dense[T] — a row-major rows×cols value over one flat buffer
//	  • Elementwise kernels: Add, Sub, Neg, Scale, DivScalar, Hadamard, Min, Max
//	  • Products: MatMul (classic triple loop), Dot
//	  • Transforms: Transpose, Identity, Resize, RowPermute, ColPermute
//	  • Reductions: Sum, Mean, Trace, NormL1, NormL2, NormLInf — always
//	    accumulated in float64, whatever the element type
//
// ✨ Key guarantees:
//
//   - Value semantics — every matrix owns its buffer; kernels never mutate
//     operands and always return fresh results
//   - Fail-fast — shape, index and permutation preconditions are validated
//     before any work and reported via package sentinels (errors.Is-friendly)
//   - Deterministic — fixed loop orders, explicit row-major layout,
//     documented gather direction for permutations
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.Identity[float64](2)
//	c, err := matrix.MatMul(a, b) // c == a
//	n := matrix.NormL2(c)         // Frobenius norm
//
// Permutation semantics (load-bearing for the lup package):
//
//	RowPermute(perm): new[r]   = old[perm[r]]   — gather by destination row
//	ColPermute(perm): new(:,c) = old(:,perm[c]) — gather by destination column
//
// Complexity: element access O(1); kernels O(r·c); MatMul O(r·n·c).
package matrix

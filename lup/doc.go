// SPDX-License-Identifier: MIT

// Package lup solves square linear systems A·x = b through LU decomposition
// with partial (row) pivoting: P·A = L·U.
//
// # What is LUP decomposition?
//
// Gaussian elimination factors A into a unit lower-triangular L and an
// upper-triangular U. Choosing, at every elimination step k, the row with the
// largest |U[i,k]| below the diagonal (partial pivoting) keeps the
// multipliers bounded by 1 and makes the factorization numerically stable for
// well-conditioned systems. The row exchanges are recorded as a permutation P,
// so the factorization reads P·A = L·U and solving proceeds in two
// triangular sweeps:
//
//	L·y = P·b   (forward substitution, unit diagonal)
//	U·x = y     (backward substitution)
//
// # Why LUP here
//
//   - ✨ Deterministic: the pivot scan uses a strict “>” comparison, so the
//     FIRST row attaining the maximal magnitude always wins ties — identical
//     inputs yield identical factors, permutations and solutions.
//   - ✨ Fail-fast singularity: a pivot magnitude at or below PivotEps aborts
//     with ErrSingular instead of dividing by a numerically dead value.
//   - ✨ Precision: all elimination and substitution arithmetic runs in
//     float64 regardless of the element type, converting back only at the end.
//
// # Quick start
//
//	a, _ := matrix.FromRows([][]float64{{2, 1}, {1, 3}})
//	b := matrix.ColVector([]float64{3, 5})
//	sys, err := lup.NewSystem(a, b)
//	if err != nil { ... }
//	x, err := sys.Solve() // 2×1 column with the solution
//
// # Complexity
//
//   - Decompose: O(n³) time, O(n²) memory.
//   - Substitution: O(n²) time.
//
// See DESIGN.md at the repository root for the numeric policy rationale.
package lup

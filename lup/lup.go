// SPDX-License-Identifier: MIT
// Package lup — LU decomposition with partial pivoting and the triangular
// substitution sweeps. The System type owns defensive copies of A and b, so
// Solve/Decompose never mutate caller data and may be called repeatedly.

package lup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opNewSystem = "NewSystem"
	opSolve     = "Solve"
	opDecompose = "Decompose"
)

// System is a square linear system A·x = b prepared for LUP solving.
// Construction validates shapes once; the zero value is not usable.
type System[T matrix.Float] struct {
	n int       // system order
	a []float64 // row-major copy of A, promoted to float64
	b []float64 // right-hand side copy, promoted to float64
}

// lupErrorf wraps err with an operation tag, preserving the cause for errors.Is.
func lupErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewSystem builds a solver for A·x = b.
//
// Implementation:
//   - Stage 1: validate A square and non-empty, b vector-shaped with
//     VecLen(b) == A.Rows().
//   - Stage 2: copy A and b into float64 working storage. The caller keeps
//     ownership of both inputs; later mutations do not affect the System.
//
// Inputs:
//   - a: n×n coefficient matrix, n ≥ 1.
//   - b: right-hand side as a 1×n or n×1 matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrEmptyMatrix,
//     matrix.ErrNotVector, matrix.ErrLengthMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSystem[T matrix.Float](a, b *matrix.Dense[T]) (*System[T], error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, lupErrorf(opNewSystem, err)
	}
	if a.Empty() {
		return nil, lupErrorf(opNewSystem, matrix.ErrEmptyMatrix)
	}
	if err := matrix.ValidateVector(b); err != nil {
		return nil, lupErrorf(opNewSystem, err)
	}
	n := a.Rows()
	bn, err := matrix.VecLen(b)
	if err != nil {
		return nil, lupErrorf(opNewSystem, err)
	}
	if bn != n {
		return nil, lupErrorf(opNewSystem, matrix.ErrLengthMismatch)
	}

	s := &System[T]{n: n, a: make([]float64, n*n), b: make([]float64, n)}
	var i, j int
	var v T
	for i = 0; i < n; i++ {
		row, rowErr := a.Row(i)
		if rowErr != nil {
			return nil, lupErrorf(opNewSystem, rowErr)
		}
		for j = 0; j < n; j++ {
			s.a[i*n+j] = float64(row[j])
		}
		if v, err = matrix.VecAt(b, i); err != nil {
			return nil, lupErrorf(opNewSystem, err)
		}
		s.b[i] = float64(v)
	}

	return s, nil
}

// Order returns the system size n.
func (s *System[T]) Order() int { return s.n }

// factor runs the pivoted elimination over fresh working copies.
// Returns the combined LU storage (L strictly below the diagonal with an
// implicit unit diagonal, U on and above), the permuted right-hand side, and
// the permutation perm with perm[k] = source row of destination k.
func (s *System[T]) factor() (lu, pb []float64, perm []int, err error) {
	n := s.n
	lu = make([]float64, n*n)
	copy(lu, s.a)
	pb = make([]float64, n)
	copy(pb, s.b)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var k, i, j, pivot int
	var best, cand, m float64
	for k = 0; k < n; k++ {
		// Pivot scan over rows k..n-1: strict ">" so the first maximal
		// magnitude wins ties, keeping the factorization deterministic.
		pivot = k
		best = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(lu[i*n+k]); cand > best {
				best = cand
				pivot = i
			}
		}
		if best <= PivotEps {
			return nil, nil, nil, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, lu[pivot*n+k], float64(PivotEps), ErrSingular)
		}

		if pivot != k {
			// Swap full rows of the combined storage: this exchanges both the
			// remaining U part (columns k..n-1) and the already-computed L
			// multipliers (columns 0..k-1) in one move.
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[pivot*n+j] = lu[pivot*n+j], lu[k*n+j]
			}
			pb[k], pb[pivot] = pb[pivot], pb[k]
			perm[k], perm[pivot] = perm[pivot], perm[k]
		}

		// Eliminate column k below the diagonal.
		for i = k + 1; i < n; i++ {
			m = lu[i*n+k] / lu[k*n+k]
			lu[i*n+k] = m // store the multiplier in L's slot
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= m * lu[k*n+j]
			}
		}
	}

	return lu, pb, perm, nil
}

// Solve computes x such that A·x = b.
//
// Implementation:
//   - Stage 1: factor() — pivoted elimination into combined LU storage.
//   - Stage 2: forward substitution L·y = P·b (unit diagonal, multipliers
//     read from below the diagonal).
//   - Stage 3: backward substitution U·x = y.
//
// Returns:
//   - *matrix.Dense[T]: the solution as an n×1 column, converted back to T.
//
// Errors:
//   - ErrSingular when some pivot magnitude falls to PivotEps or below.
//
// Determinism:
//   - Fixed scan and elimination order; identical inputs yield identical x.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (s *System[T]) Solve() (*matrix.Dense[T], error) {
	lu, pb, _, err := s.factor()
	if err != nil {
		return nil, lupErrorf(opSolve, err)
	}
	n := s.n

	// Forward: L·y = P·b with implicit unit diagonal.
	y := make([]float64, n)
	var i, j int
	var acc float64
	for i = 0; i < n; i++ {
		acc = pb[i]
		for j = 0; j < i; j++ {
			acc -= lu[i*n+j] * y[j]
		}
		y[i] = acc
	}

	// Backward: U·x = y.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		acc = y[i]
		for j = i + 1; j < n; j++ {
			acc -= lu[i*n+j] * x[j]
		}
		x[i] = acc / lu[i*n+i]
	}

	out := make([]T, n)
	for i = 0; i < n; i++ {
		out[i] = T(x[i])
	}

	return matrix.ColVector(out), nil
}

// Decompose returns the explicit factors of P·A = L·U.
//
// Returns:
//   - l: unit lower-triangular n×n matrix (ones on the diagonal).
//   - u: upper-triangular n×n matrix.
//   - perm: row permutation with perm[k] = source row of destination row k,
//     matching the gather convention of Dense.RowPermute, so applying
//     a.RowPermute(perm) to a copy of A yields exactly L·U.
//
// Errors:
//   - ErrSingular when the elimination hits a dead pivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (s *System[T]) Decompose() (l, u *matrix.Dense[T], perm []int, err error) {
	lu, _, perm, err := s.factor()
	if err != nil {
		return nil, nil, nil, lupErrorf(opDecompose, err)
	}
	n := s.n

	if l, err = matrix.NewDense[T](n, n); err != nil {
		return nil, nil, nil, lupErrorf(opDecompose, err)
	}
	if u, err = matrix.NewDense[T](n, n); err != nil {
		return nil, nil, nil, lupErrorf(opDecompose, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				if err = l.Set(i, j, T(lu[i*n+j])); err != nil {
					return nil, nil, nil, lupErrorf(opDecompose, err)
				}
			case j == i:
				if err = l.Set(i, i, 1); err != nil {
					return nil, nil, nil, lupErrorf(opDecompose, err)
				}
				fallthrough
			default:
				if err = u.Set(i, j, T(lu[i*n+j])); err != nil {
					return nil, nil, nil, lupErrorf(opDecompose, err)
				}
			}
		}
	}

	return l, u, perm, nil
}

// Solve is the one-shot convenience: build a System and solve it.
// Errors mirror NewSystem and System.Solve.
func Solve[T matrix.Float](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	sys, err := NewSystem(a, b)
	if err != nil {
		return nil, err
	}

	return sys.Solve()
}

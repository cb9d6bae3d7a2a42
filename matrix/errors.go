// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0,
	// or ragged row input). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or linear) is outside
	// valid bounds. Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Hadamard on different shapes, or MatMul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals that a 1×n or n×1 matrix was required.
	ErrNotVector = errors.New("matrix: expected a vector (1xN or Nx1)")

	// ErrLengthMismatch indicates two vectors (or a vector and a required
	// dimension) disagree on length.
	ErrLengthMismatch = errors.New("matrix: vector length mismatch")

	// ErrBadPermutation indicates a permutation argument is not a true
	// permutation: wrong size or duplicate indices. Out-of-range entries are
	// reported as ErrOutOfRange instead.
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrDivisionByZero is returned on scalar division by zero and on
	// normalization of a (near-)zero vector.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrEmptyMatrix is returned by reductions that are undefined on an empty
	// matrix (Mean, MinElement, MaxElement).
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/vector/permutation checks here.
//   - Return plain sentinel errors (no custom types) so call sites can wrap
//     uniformly and callers match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate at most O(n) scratch
//     (permutation duplicate tracking).
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Returns ErrNonSquare if not. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare[T Number](m *Dense[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateVector ensures m is a non-nil vector-shaped matrix (1×n or n×1).
// The empty matrix is NOT a vector. Errors: ErrNilMatrix, ErrNotVector.
// Complexity: O(1).
func ValidateVector[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if m.Empty() || (m.Rows() != 1 && m.Cols() != 1) {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}

// ValidateVecLen ensures the slice length matches the required size n.
// Errors: ErrLengthMismatch. A nil slice of the right length (n==0) passes.
// Complexity: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrLengthMismatch)
	}

	return nil
}

// ValidatePermutation checks that perm is a true permutation of 0..n-1:
// exact size, every index in range, no duplicates.
// Errors: ErrBadPermutation (size or duplicates), ErrOutOfRange (bad index).
// Error priority is fixed: size → range → duplicates, so a wrong-size slice
// never reports a range violation first.
// Complexity: O(n) time, O(n) scratch.
func ValidatePermutation(perm []int, n int) error {
	// Size must match exactly.
	if len(perm) != n {
		return validatorErrorf("ValidatePermutation: size", ErrBadPermutation)
	}

	// Every index must be in [0, n).
	for i := 0; i < n; i++ {
		if perm[i] < 0 || perm[i] >= n {
			return fmt.Errorf("ValidatePermutation: index %d at position %d, bound %d: %w", perm[i], i, n, ErrOutOfRange)
		}
	}

	// No duplicates (true permutation).
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		if seen[perm[i]] {
			return fmt.Errorf("ValidatePermutation: duplicate index %d: %w", perm[i], ErrBadPermutation)
		}
		seen[perm[i]] = true
	}

	return nil
}

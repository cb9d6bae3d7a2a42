// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Treat 1×n and n×1 matrices uniformly as vectors: length, indexed access,
//     permutation. Solvers (lup, newton) use these helpers so right-hand sides
//     can arrive in either orientation.

package matrix

const (
	opVecLen        = "VecLen"
	opVecAt         = "VecAt"
	opVecSet        = "VecSet"
	opPermuteVector = "PermuteVector"
)

// IsVector reports whether m is vector-shaped (1×n or n×1, non-empty).
// A nil or empty matrix is not a vector.
func IsVector[T Number](m *Dense[T]) bool {
	return ValidateVector(m) == nil
}

// VecLen returns the number of elements of a vector-shaped matrix.
// Errors: ErrNilMatrix, ErrNotVector.
func VecLen[T Number](m *Dense[T]) (int, error) {
	if err := ValidateVector(m); err != nil {
		return 0, matrixErrorf(opVecLen, err)
	}

	return m.Size(), nil
}

// VecAt returns element i of a vector-shaped matrix, regardless of whether it
// is stored as a row or a column.
// Errors: ErrNilMatrix, ErrNotVector, ErrOutOfRange.
func VecAt[T Number](m *Dense[T], i int) (T, error) {
	var zero T
	if err := ValidateVector(m); err != nil {
		return zero, matrixErrorf(opVecAt, err)
	}
	if i < 0 || i >= m.Size() {
		return zero, matrixErrorf(opVecAt, ErrOutOfRange)
	}

	return m.data[i], nil
}

// VecSet writes element i of a vector-shaped matrix in place.
// Errors: ErrNilMatrix, ErrNotVector, ErrOutOfRange.
func VecSet[T Number](m *Dense[T], i int, v T) error {
	if err := ValidateVector(m); err != nil {
		return matrixErrorf(opVecSet, err)
	}
	if i < 0 || i >= m.Size() {
		return matrixErrorf(opVecSet, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// PermuteVector returns a fresh slice out with out[i] = x[perm[i]] — the same
// gather-by-destination convention RowPermute uses, applied to a raw slice.
// Errors: ErrBadPermutation, ErrOutOfRange (from ValidatePermutation).
// Complexity: Time O(n), Space O(n).
func PermuteVector[T Number](x []T, perm []int) ([]T, error) {
	if err := ValidatePermutation(perm, len(x)); err != nil {
		return nil, matrixErrorf(opPermuteVector, err)
	}

	out := make([]T, len(x))
	for i := range perm {
		out[i] = x[perm[i]]
	}

	return out, nil
}

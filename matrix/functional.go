// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise functional mapping: Apply/ApplyInPlace with a user function,
//     plus the ready-made Sin/Cos transforms for Float matrices.

package matrix

import "math"

const (
	opApply        = "Apply"
	opApplyInPlace = "ApplyInPlace"
	opSin          = "Sin"
	opCos          = "Cos"
)

// Apply returns a fresh matrix with out[i,j] = f(a[i,j]).
// The input matrix is never mutated; f must be pure for deterministic results.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Apply[T Number](a *Dense[T], f func(T) T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i])
	}

	return out, nil
}

// ApplyInPlace overwrites every element with f(element), in place.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(1).
func ApplyInPlace[T Number](a *Dense[T], f func(T) T) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(opApplyInPlace, err)
	}
	for i := range a.data {
		a.data[i] = f(a.data[i])
	}

	return nil
}

// Sin returns a fresh matrix with the element-wise sine of a.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Sin[T Float](a *Dense[T]) (*Dense[T], error) {
	out, err := Apply(a, func(v T) T { return T(math.Sin(float64(v))) })
	if err != nil {
		return nil, matrixErrorf(opSin, err)
	}

	return out, nil
}

// Cos returns a fresh matrix with the element-wise cosine of a.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Cos[T Float](a *Dense[T]) (*Dense[T], error) {
	out, err := Apply(a, func(v T) T { return T(math.Cos(float64(v))) })
	if err != nil {
		return nil, matrixErrorf(opCos, err)
	}

	return out, nil
}

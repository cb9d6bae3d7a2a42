// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide aggregate reductions (Sum, Mean, Trace, Dot) and norms
//     (L1, L2, L∞) plus L1/L2 vector normalization.
//   - Accumulate EVERY reduction in the Norm (float64) type, independent of
//     the element type, so narrow or integral matrices do not lose precision.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 traversal for all reductions; stable results.
//   - Norms treat a matrix as a flattened vector (L2 == Frobenius norm).

package matrix

import "math"

// DefaultNormEps is the smallest vector norm Normalize accepts before
// declaring the division unsafe. Mirrors the solver's pivot threshold.
const DefaultNormEps = 1e-18

// Operation name constants for unified error wrapping.
const (
	opSum        = "Sum"
	opMean       = "Mean"
	opTrace      = "Trace"
	opDot        = "Dot"
	opMinElement = "MinElement"
	opMaxElement = "MaxElement"
	opNormalize  = "Normalize"
)

// Sum returns the sum of all elements, accumulated in Norm.
// Errors: ErrNilMatrix. An empty matrix sums to 0.
// Complexity: Time O(r*c), Space O(1).
func Sum[T Number](a *Dense[T]) (Norm, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	var acc Norm
	for i := range a.data {
		acc += Norm(a.data[i])
	}

	return acc, nil
}

// Mean returns the arithmetic mean of all elements.
// Errors: ErrNilMatrix, ErrEmptyMatrix on a 0-element matrix.
// Complexity: Time O(r*c), Space O(1).
func Mean[T Number](a *Dense[T]) (Norm, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opMean, err)
	}
	if a.Size() == 0 {
		return 0, matrixErrorf(opMean, ErrEmptyMatrix)
	}

	s, err := Sum(a)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return s / Norm(a.Size()), nil
}

// Trace returns Σ a[i,i] for a square matrix, accumulated in Norm.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n), Space O(1).
func Trace[T Number](a *Dense[T]) (Norm, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var acc Norm
	for i := 0; i < a.r; i++ {
		acc += Norm(a.data[i*a.c+i])
	}

	return acc, nil
}

// Dot returns the scalar product ⟨a, b⟩ of two vector-shaped matrices
// (1×n or n×1, shapes may differ as long as lengths match).
// Errors: ErrNotVector, ErrLengthMismatch.
// Complexity: Time O(n), Space O(1).
func Dot[T Number](a, b *Dense[T]) (Norm, error) {
	if err := ValidateVector(a); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateVector(b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	// Flat buffers already hold the vector contents in order.
	if len(a.data) != len(b.data) {
		return 0, matrixErrorf(opDot, ErrLengthMismatch)
	}

	var acc Norm
	for i := range a.data {
		acc += Norm(a.data[i]) * Norm(b.data[i])
	}

	return acc, nil
}

// MinElement returns the smallest element of a non-empty matrix.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: Time O(r*c), Space O(1).
func MinElement[T Number](a *Dense[T]) (T, error) {
	return extremum(a, opMinElement, func(x, y T) bool { return x < y })
}

// MaxElement returns the largest element of a non-empty matrix.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: Time O(r*c), Space O(1).
func MaxElement[T Number](a *Dense[T]) (T, error) {
	return extremum(a, opMaxElement, func(x, y T) bool { return x > y })
}

// extremum shares validation and the scan between MinElement and MaxElement.
func extremum[T Number](a *Dense[T], opTag string, pick func(x, y T) bool) (T, error) {
	var zero T
	if err := ValidateNotNil(a); err != nil {
		return zero, matrixErrorf(opTag, err)
	}
	if a.Size() == 0 {
		return zero, matrixErrorf(opTag, ErrEmptyMatrix)
	}

	best := a.data[0]
	for _, v := range a.data[1:] {
		if pick(v, best) {
			best = v
		}
	}

	return best, nil
}

// NormL1 returns Σ|a[i]| over all elements, accumulated in Norm.
// An empty matrix has norm 0. Nil input yields 0 by the same convention.
// Complexity: Time O(r*c), Space O(1).
func NormL1[T Number](a *Dense[T]) Norm {
	if a == nil {
		return 0
	}
	var acc Norm
	for i := range a.data {
		acc += math.Abs(Norm(a.data[i]))
	}

	return acc
}

// NormL2 returns sqrt(Σ a[i]²) over all elements, accumulated in Norm.
// For a full matrix this is the Frobenius norm.
// Complexity: Time O(r*c), Space O(1).
func NormL2[T Number](a *Dense[T]) Norm {
	if a == nil {
		return 0
	}
	var acc Norm
	var v Norm
	for i := range a.data {
		v = Norm(a.data[i])
		acc += v * v
	}

	return math.Sqrt(acc)
}

// NormLInf returns max|a[i]| over all elements.
// Complexity: Time O(r*c), Space O(1).
func NormLInf[T Number](a *Dense[T]) Norm {
	if a == nil {
		return 0
	}
	var best Norm
	var v Norm
	for i := range a.data {
		v = math.Abs(Norm(a.data[i]))
		if v > best {
			best = v
		}
	}

	return best
}

// NormalizeL2 returns v / ‖v‖₂ for a vector-shaped matrix.
//
// Implementation:
//   - Stage 1: ValidateVector(v); compute the L2 norm in the Norm accumulator.
//   - Stage 2: guard ‖v‖ ≤ eps (division-by-zero protection), then scale.
//
// Inputs:
//   - v:   1×n or n×1 matrix of Float elements.
//   - eps: guard threshold; pass DefaultNormEps unless you have a reason not to.
//
// Errors:
//   - ErrNotVector, ErrDivisionByZero when the norm is at or below eps.
//
// Complexity:
//   - Time O(n), Space O(n) for the fresh result.
func NormalizeL2[T Float](v *Dense[T], eps Norm) (*Dense[T], error) {
	return normalize(v, NormL2(v), eps)
}

// NormalizeL1 returns v / ‖v‖₁ for a vector-shaped matrix.
// Errors and complexity mirror NormalizeL2.
func NormalizeL1[T Float](v *Dense[T], eps Norm) (*Dense[T], error) {
	return normalize(v, NormL1(v), eps)
}

// normalize shares the guard and the scaling loop between the L1/L2 facades.
func normalize[T Float](v *Dense[T], n, eps Norm) (*Dense[T], error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	if n <= eps {
		// Zero (or almost zero) vector: no meaningful direction to keep.
		return nil, matrixErrorf(opNormalize, ErrDivisionByZero)
	}

	out := &Dense[T]{r: v.r, c: v.c, data: make([]T, len(v.data))}
	for i := range v.data {
		out.data[i] = T(Norm(v.data[i]) / n)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix provides the canonical linear-algebra kernels over Dense:
// element-wise addition/subtraction/negation, scalar scaling and division,
// matrix and Hadamard products, transpose, element-wise min/max, identity.
// All kernels perform strict fail-fast validation, never mutate their
// operands, and return a freshly allocated result.

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching the underlying sentinel. Call only with
// err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opMatMul    = "MatMul"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opMin       = "Min"
	opMax       = "Max"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate the result.
//   - Stage 2: single flat loop 0..n-1 over the row-major buffers.
//
// Determinism:
//   - Fixed flat traversal 0..(r*c−1); results stable across runs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result and walk the flat buffers in lockstep.
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data { // deterministic 0..n-1
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Neg computes the element-wise negation C = -A.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Neg[T Number](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = -a.data[i]
	}

	return out, nil
}

// Scale returns a new matrix whose elements are k * a[i,j].
// The original matrix is never mutated.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Scale[T Number](a *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] * k
	}

	return out, nil
}

// DivScalar returns a new matrix whose elements are a[i,j] / k.
// For integral element types this is integer division, as in Go.
// Errors: ErrNilMatrix, ErrDivisionByZero when k is the zero value.
// Complexity: Time O(r*c), Space O(r*c).
func DivScalar[T Number](a *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	var zero T
	if k == zero {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] / k
	}

	return out, nil
}

// MatMul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: classic i→k→j triple loop with row-major strides, skipping
//     zero A[i,k] to avoid useless multiplies.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j loop order; stable accumulation order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). No blocking or tiling; semantics first.
func MatMul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	out, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	if out.Empty() {
		return out, nil // degenerate product, nothing to accumulate
	}

	var zero T
	// Row-major multiplication into out.data:
	// a.data layout i*aCols+k, b.data layout k*bCols+j.
	var i, j, k int
	var rowOffsetA, rowOffsetB, rowOffsetR int
	var av T
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == zero {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return out, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh result.
// Both inputs must be non-nil and have identical shapes; operands are not
// mutated. Hadamard ≠ matrix multiplication; use MatMul for A×B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data { // fixed order ensures deterministic results
		out.data[i] = a.data[i] * b.data[i]
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (aᵀ).
// The original matrix is never mutated; transposing twice round-trips exactly.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Number](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense[T]{r: a.c, c: a.r, data: make([]T, len(a.data))}
	// data[i*cols + j] → out.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < a.r; i++ {
		baseSrc = i * a.c
		for j = 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[baseSrc+j]
		}
	}

	return out, nil
}

// Min computes the elementwise minimum C[i] = min(A[i], B[i]).
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Min[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return minMax(a, b, opMin, func(x, y T) bool { return x < y })
}

// Max computes the elementwise maximum C[i] = max(A[i], B[i]).
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Max[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return minMax(a, b, opMax, func(x, y T) bool { return x > y })
}

// minMax shares validation and the selection loop between Min and Max.
// pick(x, y) reports whether x wins over y.
func minMax[T Number](a, b *Dense[T], opTag string, pick func(x, y T) bool) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		if pick(a.data[i], b.data[i]) {
			out.data[i] = a.data[i]
		} else {
			out.data[i] = b.data[i]
		}
	}

	return out, nil
}

// Identity builds the n×n identity matrix I (ones on the diagonal).
// n must be ≥ 0; n == 0 yields the empty matrix.
// Complexity: Time O(n²), Space O(n²).
func Identity[T Number](n int) (*Dense[T], error) {
	out, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}

	return out, nil
}

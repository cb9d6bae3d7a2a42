// SPDX-License-Identifier: MIT
// Package newton — finite-difference Jacobian approximation.
//
// Purpose:
//   - Approximate J[i,j] = ∂F_i/∂x_j without analytic derivatives, using the
//     per-coordinate step h_j = √machEps·(1+|x_j|): absolute near the origin,
//     relative for large coordinates.

package newton

import (
	"math"

	"github.com/katalvlaran/densolve/matrix"
)

// Machine epsilons of the supported element types.
const (
	eps32 = 0x1p-23 // float32: 2^-23
	eps64 = 0x1p-52 // float64: 2^-52
)

// machEps returns the machine epsilon of the element type T.
// Detected arithmetically so named types built on float32 resolve correctly:
// in float32, 1 + 2⁻²⁴ rounds back to exactly 1; in float64 it does not.
func machEps[T matrix.Float]() float64 {
	var one T = 1
	var half T = 0x1p-24
	if one+half == one {
		return eps32
	}

	return eps64
}

// stepFor returns the difference step for coordinate value v:
// h = √machEps·(1+|v|). Never zero, scales with the coordinate magnitude.
func stepFor[T matrix.Float](v T) T {
	return T(math.Sqrt(machEps[T]()) * (1 + math.Abs(float64(v))))
}

// EvalF evaluates the system at x and returns the residual as an n×1 column.
//
// Errors:
//   - ErrEmptySystem when p has no equations or a nil slot.
//   - ErrDimensionMismatch when len(x) != len(p).
//
// Complexity: Time O(n·cost(F)), Space O(n).
func EvalF[T matrix.Float](p Problem[T], x []T) (*matrix.Dense[T], error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}
	if len(x) != len(p) {
		return nil, ErrDimensionMismatch
	}

	out := make([]T, len(p))
	for i, f := range p {
		out[i] = f(x)
	}

	return matrix.ColVector(out), nil
}

// validateProblem rejects empty systems and nil function slots.
func validateProblem[T matrix.Float](p Problem[T]) error {
	if len(p) == 0 {
		return ErrEmptySystem
	}
	for _, f := range p {
		if f == nil {
			return ErrEmptySystem
		}
	}

	return nil
}

// Jacobian approximates J[i,j] = ∂F_i/∂x_j at x with the requested stencil.
//
// Implementation:
//   - Stage 1: validate the problem and len(x); for TwoPoint, evaluate the
//     base residual F(x) once.
//   - Stage 2: per column j, perturb ONLY x_j (restored afterwards), evaluate
//     the shifted residual(s), fill column j of J.
//
// Behavior highlights:
//   - TwoPoint:   J[i,j] = (F_i(x+h·e_j) − F_i(x)) / h.
//   - ThreePoint: J[i,j] = (F_i(x+h·e_j) − F_i(x−h·e_j)) / (2h).
//   - The step h_j is recomputed per coordinate via stepFor.
//
// Errors:
//   - ErrEmptySystem, ErrDimensionMismatch.
//
// Determinism:
//   - Columns are filled left to right; evaluation order is fixed.
//
// Complexity:
//   - TwoPoint: n+1 system sweeps; ThreePoint: 2n sweeps. Space O(n²).
func Jacobian[T matrix.Float](p Problem[T], x []T, formula Formula) (*matrix.Dense[T], error) {
	if err := validateProblem(p); err != nil {
		return nil, err
	}
	n := len(p)
	if len(x) != n {
		return nil, ErrDimensionMismatch
	}
	j, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, err
	}

	// Scratch point, perturbed one coordinate at a time.
	xp := make([]T, n)
	copy(xp, x)

	var base []T
	if formula == TwoPoint {
		base = make([]T, n)
		for i, f := range p {
			base[i] = f(x)
		}
	}

	var col, row int
	var h, fwd, bwd T
	for col = 0; col < n; col++ {
		h = stepFor(x[col])

		xp[col] = x[col] + h
		for row = 0; row < n; row++ {
			fwd = p[row](xp)
			switch formula {
			case ThreePoint:
				// Backward point is evaluated after the loop body below;
				// stash the forward value first.
				if err = j.Set(row, col, fwd); err != nil {
					return nil, err
				}
			default:
				if err = j.Set(row, col, (fwd-base[row])/h); err != nil {
					return nil, err
				}
			}
		}

		if formula == ThreePoint {
			xp[col] = x[col] - h
			for row = 0; row < n; row++ {
				bwd = p[row](xp)
				if fwd, err = j.At(row, col); err != nil {
					return nil, err
				}
				if err = j.Set(row, col, (fwd-bwd)/(2*h)); err != nil {
					return nil, err
				}
			}
		}

		xp[col] = x[col] // restore before the next column
	}

	return j, nil
}

// SPDX-License-Identifier: MIT
// Package newton: sentinel errors.
//
// This file intentionally contains ONLY package-level sentinels so call sites
// can match causes with errors.Is. A singular Jacobian is reported with
// lup.ErrSingular from the inner linear solve, wrapped with iteration context.

package newton

import "errors"

var (
	// ErrEmptySystem is returned when the problem has no equations or one of
	// its function slots is nil.
	ErrEmptySystem = errors.New("newton: empty system or nil function")

	// ErrDimensionMismatch is returned when len(x0) differs from the number
	// of equations.
	ErrDimensionMismatch = errors.New("newton: dimension mismatch")

	// ErrBadLambda is returned when the damping factor lies outside (0, 1].
	ErrBadLambda = errors.New("newton: lambda must be in (0, 1]")

	// ErrBadMaxIter is returned when the iteration budget is not positive.
	ErrBadMaxIter = errors.New("newton: max iterations must be >= 1")

	// ErrBadTolerance is returned when EpsF or EpsX is not positive.
	ErrBadTolerance = errors.New("newton: tolerances must be > 0")
)

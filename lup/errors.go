// SPDX-License-Identifier: MIT
// Package lup: sentinel errors and numeric thresholds.
//
// This file intentionally contains ONLY package-level sentinels and the pivot
// threshold so call sites can match causes with errors.Is.

package lup

import "errors"

// PivotEps is the smallest pivot magnitude the elimination accepts.
// A pivot with |u[k,k]| ≤ PivotEps marks the system numerically singular.
const PivotEps = 1e-18

// ErrSingular is returned when no admissible pivot exists at some elimination
// step: the matrix is exactly or numerically singular and A·x = b has no
// unique solution.
var ErrSingular = errors.New("lup: matrix is singular")

// SPDX-License-Identifier: MIT
// Package newton — the damped Newton–Raphson iteration over a numerically
// approximated Jacobian, with lup as the inner linear solver.

package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/lup"
	"github.com/katalvlaran/densolve/matrix"
)

// validateOptions rejects out-of-domain configuration before any evaluation.
func validateOptions[T matrix.Float](opts Options[T]) error {
	if opts.Lambda <= 0 || opts.Lambda > 1 {
		return fmt.Errorf("lambda=%g: %w", opts.Lambda, ErrBadLambda)
	}
	if opts.MaxIter < 1 {
		return fmt.Errorf("maxIter=%d: %w", opts.MaxIter, ErrBadMaxIter)
	}
	if opts.EpsF <= 0 || opts.EpsX <= 0 {
		return fmt.Errorf("epsF=%g, epsX=%g: %w", opts.EpsF, opts.EpsX, ErrBadTolerance)
	}

	return nil
}

// euclidean returns ‖v‖₂ accumulated in float64.
func euclidean[T matrix.Float](v []T) float64 {
	var acc, f float64
	for i := range v {
		f = float64(v[i])
		acc += f * f
	}

	return math.Sqrt(acc)
}

// Solve runs the (modified) Newton iteration on F(x) = 0 from x0.
//
// Implementation:
//   - Stage 1: validate the problem, the starting point and the options.
//     A manual opts.Jacobian is frozen as-is; ModifiedNewton approximates
//     the Jacobian once at x0 and freezes that.
//   - Stage 2: iterate up to MaxIter times:
//     1. evaluate F(x); if ‖F‖₂ < EpsF — converged (pre-step criterion);
//     2. refresh the Jacobian (plain Newton only);
//     3. solve J·s = −F through lup; a singular factorization is fatal;
//     4. form xNext = x + λ·s and notify the Observer;
//     5. if ‖s‖₂ < EpsX·(1+‖x‖₂) — stop at x WITHOUT applying the step
//     (the correction is already negligible); otherwise continue from xNext.
//   - Stage 3: budget exhausted with neither criterion firing — return the
//     last iterate with Converged == false and a nil error (reportable, not
//     fatal), regardless of its residual.
//
// Inputs:
//   - p:    square system, one Func per equation.
//   - x0:   starting point, len(x0) == len(p). Never mutated.
//   - opts: configuration; start from DefaultOptions.
//
// Returns:
//   - Result: final iterate, its residual norm, the iteration count and the
//     convergence flag.
//
// Errors:
//   - ErrEmptySystem, ErrDimensionMismatch, ErrBadLambda, ErrBadMaxIter,
//     ErrBadTolerance on invalid input; lup.ErrSingular (wrapped with the
//     iteration index) when the Jacobian cannot be factorized.
//
// Determinism:
//   - Pure functions in, fixed evaluation and pivoting order — identical
//     inputs produce identical iterates and Observer streams.
//
// Complexity:
//   - O(MaxIter·(n²·cost(F) + n³)) time, O(n²) space.
func Solve[T matrix.Float](p Problem[T], x0 []T, opts Options[T]) (Result[T], error) {
	var res Result[T]

	if err := validateProblem(p); err != nil {
		return res, err
	}
	n := len(p)
	if len(x0) != n {
		return res, fmt.Errorf("len(x0)=%d, equations=%d: %w", len(x0), n, ErrDimensionMismatch)
	}
	if err := validateOptions(opts); err != nil {
		return res, err
	}

	x := make([]T, n)
	copy(x, x0)

	// Frozen Jacobian: a manual matrix always wins; otherwise ModifiedNewton
	// approximates once at the starting point and reuses it throughout.
	var frozen *matrix.Dense[T]
	var err error
	switch {
	case opts.Jacobian != nil:
		if opts.Jacobian.Rows() != n || opts.Jacobian.Cols() != n {
			return res, fmt.Errorf("manual jacobian %dx%d, equations=%d: %w",
				opts.Jacobian.Rows(), opts.Jacobian.Cols(), n, ErrDimensionMismatch)
		}
		frozen = opts.Jacobian
	case opts.Method == ModifiedNewton:
		if frozen, err = Jacobian(p, x, opts.Formula); err != nil {
			return res, err
		}
	}

	f := make([]T, n)
	var k, i int
	var fNorm, stepNorm float64
	var j, col *matrix.Dense[T]
	for k = 0; k < opts.MaxIter; k++ {
		// Residual at the current point.
		for i = 0; i < n; i++ {
			f[i] = p[i](x)
		}
		fNorm = euclidean(f)

		res.X = x
		res.ResidualNorm = fNorm
		res.Iterations = k

		// Pre-step criterion: already at a root.
		if fNorm < opts.EpsF {
			res.Converged = true
			return res, nil
		}

		if frozen != nil {
			j = frozen
		} else if j, err = Jacobian(p, x, opts.Formula); err != nil {
			return res, err
		}

		// Correction step: J·s = −F.
		neg := make([]T, n)
		for i = 0; i < n; i++ {
			neg[i] = -f[i]
		}
		if col, err = lup.Solve(j, matrix.ColVector(neg)); err != nil {
			return res, fmt.Errorf("newton: iteration %d: %w", k, err)
		}

		step := make([]T, n)
		for i = 0; i < n; i++ {
			if step[i], err = matrix.VecAt(col, i); err != nil {
				return res, fmt.Errorf("newton: iteration %d: %w", k, err)
			}
		}
		stepNorm = euclidean(step)

		xNext := make([]T, n)
		for i = 0; i < n; i++ {
			xNext[i] = x[i] + T(opts.Lambda)*step[i]
		}

		if opts.Observer != nil {
			opts.Observer(snapshot(k, x, f, fNorm, step, stepNorm, opts.Lambda, xNext))
		}

		// Step criterion: the correction became negligible relative to x.
		// Checked after computing s but BEFORE applying it, so the reported
		// iterate is x_k, not x_k + λ·s.
		if stepNorm < opts.EpsX*(1+euclidean(x)) {
			res.X = x
			res.ResidualNorm = fNorm
			res.Iterations = k + 1
			res.Converged = true
			return res, nil
		}

		x = xNext
	}

	// Budget exhausted without either criterion firing inside the loop:
	// non-convergence, whatever the final residual happens to be.
	res.X = x
	res.ResidualNorm = residualNorm(p, x)
	res.Iterations = opts.MaxIter
	res.Converged = false

	return res, nil
}

// residualNorm evaluates ‖F(x)‖₂ at x.
func residualNorm[T matrix.Float](p Problem[T], x []T) float64 {
	f := make([]T, len(p))
	for i := range p {
		f[i] = p[i](x)
	}

	return euclidean(f)
}

// snapshot builds an Iteration with defensive copies of every slice, so
// observers may retain what they receive.
func snapshot[T matrix.Float](k int, x, f []T, fNorm float64, step []T, stepNorm, lambda float64, xNext []T) Iteration[T] {
	cp := func(s []T) []T {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}

	return Iteration[T]{
		K:        k,
		X:        cp(x),
		F:        cp(f),
		FNorm:    fNorm,
		Step:     cp(step),
		StepNorm: stepNorm,
		Lambda:   lambda,
		XNext:    cp(xNext),
	}
}

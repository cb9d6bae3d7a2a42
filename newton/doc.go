// SPDX-License-Identifier: MIT

// Package newton finds roots of square nonlinear systems F(x) = 0 with the
// Newton–Raphson iteration and a numerically approximated Jacobian.
//
// # What is Newton's method?
//
// Given n equations in n unknowns, each iteration linearizes the system at
// the current point x and solves the correction step s from
//
//	J(x)·s = −F(x)
//
// where J is the Jacobian matrix J[i,j] = ∂F_i/∂x_j. The next iterate is
// x ← x + λ·s with a damping factor λ ∈ (0, 1]. Near a simple root the
// undamped iteration converges quadratically.
//
// # Two methods, two formulas
//
//   - 🚀 Newton (default): the Jacobian is re-approximated at every
//     iteration. Fast convergence, n extra function-set evaluations per step.
//   - 🚀 ModifiedNewton: the Jacobian is approximated ONCE at the starting
//     point and reused. Each step is cheaper (one factorization target),
//     convergence degrades to linear — typically more iterations.
//
// The partial derivatives come from finite differences with a per-coordinate
// step h_j = √machEps·(1+|x_j|):
//
//   - ✨ TwoPoint: (F(x+h·e_j) − F(x)) / h — n+1 evaluations, O(h) error.
//   - ✨ ThreePoint: (F(x+h·e_j) − F(x−h·e_j)) / 2h — 2n evaluations,
//     O(h²) error.
//
// # Convergence and non-convergence
//
// The loop stops when ‖F(x)‖₂ < EpsF before a step, or when a computed
// correction satisfies ‖s‖₂ < EpsX·(1+‖x‖₂) — in that case the step is NOT
// applied and the current iterate is returned. Running out of iterations is
// NOT an
// error: Solve returns a Result with Converged == false so callers can
// inspect the final iterate, retry with different damping, or report it.
// A singular Jacobian, in contrast, is fatal and surfaces lup.ErrSingular.
//
// # Quick start
//
//	sys := newton.Problem[float64]{
//		func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] - 1 }, // unit circle
//		func(x []float64) float64 { return x[0] - x[1] },               // diagonal
//	}
//	res, err := newton.Solve(sys, []float64{1, 1}, newton.DefaultOptions[float64]())
//	if err != nil { ... }
//	if res.Converged {
//		fmt.Println(res.X) // ≈ (√2/2, √2/2)
//	}
//
// Attach an Observer to receive every iteration's state (x, F, step, norms)
// for logging or plotting.
package newton

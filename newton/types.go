// SPDX-License-Identifier: MIT

// Package newton defines the problem, option and result types for the solver.
package newton

import "github.com/katalvlaran/densolve/matrix"

// Func is one scalar equation of the system: given the full variable vector x
// it returns the residual F_i(x). Implementations must be pure — the solver
// calls them repeatedly at perturbed points while approximating derivatives.
type Func[T matrix.Float] func(x []T) T

// Problem is a square system of n equations in n unknowns, one Func per row.
// The row order fixes the row order of F(x) and of the Jacobian.
type Problem[T matrix.Float] []Func[T]

// Method selects how often the Jacobian is refreshed.
//
//   - Newton         — re-approximate J at every iteration (quadratic
//     convergence near a simple root, n extra evaluation sweeps per step).
//   - ModifiedNewton — approximate J once at the starting point and reuse it
//     for all iterations (cheaper steps, linear convergence).
type Method int

const (
	// Newton refreshes the Jacobian on every iteration.
	Newton Method = iota

	// ModifiedNewton freezes the Jacobian at the starting point.
	ModifiedNewton
)

// Formula selects the finite-difference stencil for ∂F_i/∂x_j.
//
//   - TwoPoint   — forward difference, O(h) error, n+1 function-set sweeps.
//   - ThreePoint — central difference, O(h²) error, 2n function-set sweeps.
type Formula int

const (
	// TwoPoint uses (F(x+h·e_j) − F(x)) / h.
	TwoPoint Formula = iota

	// ThreePoint uses (F(x+h·e_j) − F(x−h·e_j)) / (2h).
	ThreePoint
)

// Default option values. DefaultOptions starts from these; override fields as
// needed before passing the struct to Solve.
const (
	// DefaultLambda is the undamped full Newton step.
	DefaultLambda = 1.0

	// DefaultMaxIter bounds the iteration count before reporting
	// non-convergence.
	DefaultMaxIter = 50

	// DefaultEpsF is the residual threshold: stop when ‖F(x)‖₂ < EpsF.
	DefaultEpsF = 1e-8

	// DefaultEpsX is the relative step threshold: stop when
	// ‖s‖₂ < EpsX·(1+‖x‖₂).
	DefaultEpsX = 1e-8
)

// Iteration is the per-step snapshot handed to an Observer: the state BEFORE
// the update, the solved correction, and the damped next point. All slices
// are fresh copies — observers may retain them.
type Iteration[T matrix.Float] struct {
	K        int     // iteration index, starting at 0
	X        []T     // current point
	F        []T     // residual vector F(X)
	FNorm    float64 // ‖F(X)‖₂
	Step     []T     // correction s solved from J·s = −F
	StepNorm float64 // ‖s‖₂
	Lambda   float64 // damping applied to this step
	XNext    []T     // X + Lambda·Step
}

// Observer receives every iteration's snapshot. Optional; nil disables
// reporting. Called synchronously from Solve in iteration order.
type Observer[T matrix.Float] func(it Iteration[T])

// Options configures one Solve run.
//
// Fields:
//   - Method   — Newton or ModifiedNewton (Jacobian refresh policy).
//   - Formula  — TwoPoint or ThreePoint difference stencil.
//   - Jacobian — optional analytic Jacobian, used as-is for every iteration
//     instead of any numeric approximation (implies frozen-J behavior);
//     must be n×n or Solve fails with ErrDimensionMismatch.
//   - Lambda   — damping factor in (0, 1]; 1 is the full step.
//   - MaxIter  — iteration budget; exhausting it yields Converged == false.
//   - EpsF     — pre-step residual tolerance (‖F‖₂).
//   - EpsX     — post-step relative step tolerance.
//   - Observer — optional per-iteration hook.
//
// Example:
//
//	opts := newton.DefaultOptions[float64]()
//	opts.Method = newton.ModifiedNewton
//	opts.Lambda = 0.5 // half steps for a touchy system
//	res, err := newton.Solve(sys, x0, opts)
type Options[T matrix.Float] struct {
	Method   Method
	Formula  Formula
	Jacobian *matrix.Dense[T]
	Lambda   float64
	MaxIter  int
	EpsF     float64
	EpsX     float64
	Observer Observer[T]
}

// DefaultOptions returns the canonical configuration: plain Newton with the
// two-point formula, full steps and the Default* tolerances.
func DefaultOptions[T matrix.Float]() Options[T] {
	return Options[T]{
		Method:  Newton,
		Formula: TwoPoint,
		Lambda:  DefaultLambda,
		MaxIter: DefaultMaxIter,
		EpsF:    DefaultEpsF,
		EpsX:    DefaultEpsX,
	}
}

// Result is the outcome of a Solve run. Converged == false with a nil error
// means the iteration budget ran out — a reportable outcome, not a failure:
// X still holds the last iterate and ResidualNorm its residual.
type Result[T matrix.Float] struct {
	X            []T     // final iterate
	ResidualNorm float64 // ‖F(X)‖₂ at the final iterate
	Iterations   int     // iterations actually performed
	Converged    bool    // true when a tolerance criterion fired
}

// Package densolve is a small, generic numerical toolkit for dense linear
// algebra and nonlinear root finding — from owned matrix values to a
// damped Newton iteration controller.
//
// 🚀 What is densolve?
//
//	A pure-Go library that brings together:
//		• Dense matrices: generic, row-major, value-semantic storage
//		• Linear algebra: elementwise kernels, products, norms, transforms
//		• Direct solving: LUP decomposition with partial pivoting
//		• Root finding: Newton and modified Newton for F(x)=0 systems
//
// ✨ Why choose densolve?
//
//   - Precision as a type parameter – float32 or float64, chosen at the call site
//   - Fail-fast guarantees – every shape/index precondition returns a sentinel error
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, explicit tie-break rules, no global state
//
// Everything is organized under three subpackages:
//
//	matrix/ — Dense[T] value type, kernels (Add/Sub/MatMul/Transpose/…), norms
//	lup/    — LUP factorization (PA=LU) and the Ax=b System solver
//	newton/ — Newton / modified-Newton controller with numeric Jacobians
//
// Quick example — solve x²+y²=1, x=y:
//
//	sys := newton.Problem[float64]{
//	    func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] - 1 },
//	    func(x []float64) float64 { return x[0] - x[1] },
//	}
//	res, err := newton.Solve(sys, []float64{1, 1}, newton.DefaultOptions[float64]())
//	// res.X ≈ [0.7071, 0.7071], res.Converged == true
//
// See each subpackage's doc.go for algorithms, complexity and error contracts.
package densolve

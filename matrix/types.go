// SPDX-License-Identifier: MIT

// Package matrix: numeric constraints shared by every generic kernel.
// This file intentionally contains ONLY the type-parameter constraints and
// the norm accumulator alias. Errors and validators live in dedicated files
// (errors.go, validators.go) per the package conventions.
package matrix

// Number constrains the element types a Dense may hold: the built-in signed
// integers and floats. bool is excluded on purpose — arithmetic over flags is
// never meaningful — and unsigned types are excluded because Neg/Sub would
// silently wrap.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float constrains the element types eligible for solver and transcendental
// kernels (NormalizeL2, Sin, Cos, the lup and newton packages). Stricter than
// Number: sqrt/abs/epsilon only make sense for floating-point elements.
type Float interface {
	~float32 | ~float64
}

// Norm is the accumulator type for norms, dot products and reductions.
// Even when the element type is narrow (float32) or integral, reductions
// accumulate in Norm to limit precision loss.
type Norm = float64

// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and reductions.
//   - Keep all data finite and well-formed so tests exercise semantics only.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/matrix"
)

// MustDense allocates an r×c zeroed Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoErrorf(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromSlice builds an r×c Dense from a row-major flat slice or fails.
func MustFromSlice(t *testing.T, vals []float64, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromSlice(vals, r, c)
	require.NoErrorf(t, err, "FromSlice(%d,%d)", r, c)

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t *testing.T, m *matrix.Dense[float64], i, j int, v float64) {
	t.Helper()
	require.NoErrorf(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoErrorf(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// CompareExact asserts strict equality between a Dense and a 2D literal.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense[float64]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equalf(t, len(want[i]), m.Cols(), "column count of row %d", i)
		for j = 0; j < m.Cols(); j++ {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |m[i,j]-want[i][j]| ≤ eps element-wise.
func CompareClose(t *testing.T, want [][]float64, m *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.InDeltaf(t, want[i][j], MustAt(t, m, i, j), eps, "m[%d,%d]", i, j)
		}
	}
}

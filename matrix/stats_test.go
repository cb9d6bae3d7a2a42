// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/matrix"
)

func TestSumMeanTrace(t *testing.T) {
	t.Parallel()

	m := MustFromSlice(t, []float64{1, 2, 3, 4}, 2, 2)

	s, err := matrix.Sum(m)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s, "Sum")

	mean, err := matrix.Mean(m)
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean, "Mean")

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr, "Trace")

	rect := MustDense(t, 2, 3)
	_, err = matrix.Trace(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	empty := MustDense(t, 0, 0)
	_, err = matrix.Mean(empty)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestDot_OrientationAgnostic(t *testing.T) {
	t.Parallel()

	row := matrix.RowVector([]float64{1, 2, 3})
	col := matrix.ColVector([]float64{4, 5, 6})

	d, err := matrix.Dot(row, col)
	require.NoError(t, err)
	assert.Equal(t, 32.0, d, "4 + 10 + 18")

	short := matrix.RowVector([]float64{1, 2})
	_, err = matrix.Dot(row, short)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)

	sq := MustDense(t, 2, 2)
	_, err = matrix.Dot(sq, sq)
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestMinMaxElement(t *testing.T) {
	t.Parallel()

	m := MustFromSlice(t, []float64{3, -1, 7, 0}, 2, 2)

	lo, err := matrix.MinElement(m)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo, "MinElement")

	hi, err := matrix.MaxElement(m)
	require.NoError(t, err)
	assert.Equal(t, 7.0, hi, "MaxElement")

	empty := MustDense(t, 0, 3)
	_, err = matrix.MinElement(empty)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestNorms(t *testing.T) {
	t.Parallel()

	v := matrix.ColVector([]float64{3, -4})

	assert.Equal(t, 7.0, matrix.NormL1(v), "NormL1")
	assert.Equal(t, 5.0, matrix.NormL2(v), "NormL2")
	assert.Equal(t, 4.0, matrix.NormLInf(v), "NormLInf")

	// Frobenius over a full matrix is the L2 of the flattened buffer.
	m := MustFromSlice(t, []float64{1, 2, 2, 4}, 2, 2)
	assert.InDelta(t, math.Sqrt(1+4+4+16), matrix.NormL2(m), 1e-15, "Frobenius")

	// Empty and nil both have norm zero by convention.
	assert.Zero(t, matrix.NormL2(MustDense(t, 0, 0)), "empty norm")
	var nilM *matrix.Dense[float64]
	assert.Zero(t, matrix.NormL1(nilM), "nil L1")
	assert.Zero(t, matrix.NormL2(nilM), "nil L2")
	assert.Zero(t, matrix.NormLInf(nilM), "nil LInf")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v := matrix.ColVector([]float64{3, 4})

	unit, err := matrix.NormalizeL2(v, matrix.DefaultNormEps)
	require.NoError(t, err, "NormalizeL2")
	CompareClose(t, [][]float64{{0.6}, {0.8}}, unit, 1e-15)
	assert.InDelta(t, 1.0, matrix.NormL2(unit), 1e-15, "normalized L2 norm")

	l1, err := matrix.NormalizeL1(v, matrix.DefaultNormEps)
	require.NoError(t, err, "NormalizeL1")
	assert.InDelta(t, 1.0, matrix.NormL1(l1), 1e-15, "normalized L1 norm")

	// Input must not be mutated.
	CompareExact(t, [][]float64{{3}, {4}}, v)

	zero := matrix.ColVector([]float64{0, 0})
	_, err = matrix.NormalizeL2(zero, matrix.DefaultNormEps)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	sq := MustDense(t, 2, 2)
	_, err = matrix.NormalizeL2(sq, matrix.DefaultNormEps)
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestReductions_IntegralAccumulateInFloat(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err, "FromRows")

	mean, err := matrix.Mean(m)
	require.NoError(t, err)
	assert.Equal(t, 2.5, mean, "integral elements must average in a float accumulator")
	assert.InDelta(t, math.Sqrt(30), matrix.NormL2(m), 1e-15, "int NormL2")
}

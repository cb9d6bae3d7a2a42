// SPDX-License-Identifier: MIT

package newton_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/matrix"
	"github.com/katalvlaran/densolve/newton"
)

// jacobianFixture has a hand-computable Jacobian:
//
//	F0 = x²+y²   → ∂/∂x = 2x, ∂/∂y = 2y
//	F1 = x·y     → ∂/∂x = y,  ∂/∂y = x
func jacobianFixture() newton.Problem[float64] {
	return newton.Problem[float64]{
		func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
		func(x []float64) float64 { return x[0] * x[1] },
	}
}

func TestJacobian_MatchesAnalytic(t *testing.T) {
	t.Parallel()

	x := []float64{2, 3}
	want := [][]float64{
		{4, 6},
		{3, 2},
	}

	for _, tc := range []struct {
		name    string
		formula newton.Formula
		tol     float64
	}{
		{"two-point", newton.TwoPoint, 1e-6},
		{"three-point", newton.ThreePoint, 1e-6},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			j, err := newton.Jacobian(jacobianFixture(), x, tc.formula)
			require.NoError(t, err)
			require.Equal(t, 2, j.Rows())
			require.Equal(t, 2, j.Cols())

			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					got, atErr := j.At(r, c)
					require.NoError(t, atErr)
					require.InDeltaf(t, want[r][c], got, tc.tol, "J[%d,%d]", r, c)
				}
			}
		})
	}
}

func TestJacobian_StepScalesWithCoordinate(t *testing.T) {
	t.Parallel()

	// d/dx of x² at a huge coordinate: a fixed absolute step would drown in
	// rounding; the relative step h = √eps·(1+|x|) must keep the estimate sane.
	p := newton.Problem[float64]{
		func(x []float64) float64 { return x[0] * x[0] },
	}
	big := 1e8
	j, err := newton.Jacobian(p, []float64{big}, newton.TwoPoint)
	require.NoError(t, err)

	got, err := j.At(0, 0)
	require.NoError(t, err)
	require.InEpsilon(t, 2*big, got, 1e-6)
}

func TestJacobian_Validation(t *testing.T) {
	t.Parallel()

	_, err := newton.Jacobian(newton.Problem[float64]{}, nil, newton.TwoPoint)
	require.ErrorIs(t, err, newton.ErrEmptySystem)

	_, err = newton.Jacobian(jacobianFixture(), []float64{1}, newton.TwoPoint)
	require.ErrorIs(t, err, newton.ErrDimensionMismatch)
}

func TestSolve_ManualJacobian(t *testing.T) {
	t.Parallel()

	// Linear system with its exact Jacobian supplied by hand: Solve must use
	// the matrix as-is and land on the solution like plain Newton would.
	sys := newton.Problem[float64]{
		func(x []float64) float64 { return 2*x[0] + x[1] - 3 },
		func(x []float64) float64 { return x[0] + 3*x[1] - 5 },
	}
	j, err := matrix.FromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	require.NoError(t, err)

	opts := newton.DefaultOptions[float64]()
	opts.Jacobian = j

	res, err := newton.Solve(sys, []float64{0, 0}, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 0.8, res.X[0], 1e-9)
	require.InDelta(t, 1.4, res.X[1], 1e-9)
}

func TestSolve_ManualJacobianWrongShape(t *testing.T) {
	t.Parallel()

	j, err := matrix.NewDense[float64](3, 3)
	require.NoError(t, err)

	opts := newton.DefaultOptions[float64]()
	opts.Jacobian = j

	_, err = newton.Solve(circleLine(), []float64{1, 1}, opts)
	require.ErrorIs(t, err, newton.ErrDimensionMismatch)
}

func TestSolve_ManualJacobianNonlinear(t *testing.T) {
	t.Parallel()

	// A frozen hand Jacobian at x0=(1,1) behaves like modified Newton on the
	// circle/line fixture: slower, still convergent to √2/2.
	j, err := matrix.FromRows([][]float64{
		{2, 2}, // ∂(x²+y²−1) at (1,1)
		{1, -1},
	})
	require.NoError(t, err)

	opts := newton.DefaultOptions[float64]()
	opts.Jacobian = j
	opts.MaxIter = 500

	res, err := newton.Solve(circleLine(), []float64{1, 1}, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, math.Sqrt2/2, res.X[0], 1e-6)
	require.InDelta(t, math.Sqrt2/2, res.X[1], 1e-6)
}

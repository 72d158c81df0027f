package solve_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/solve"
)

const tol = 1e-9

// TestRidgeNormal_Identity verifies that an identity system returns b itself
// with a vanishing residual.
func TestRidgeNormal_Identity(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	b := []complex128{1, 2}

	w, res, err := solve.RidgeNormal(a, b, 1e-8)
	require.NoError(t, err)
	require.Len(t, w, 2)
	require.InDelta(t, 1, real(w[0]), 1e-6)
	require.InDelta(t, 2, real(w[1]), 1e-6)
	require.InDelta(t, 0, res, 1e-10)
}

// TestRidgeNormal_Complex checks a genuinely complex system: i·w = 1 has the
// exact solution w = −i.
func TestRidgeNormal_Complex(t *testing.T) {
	a := mat.NewCDense(1, 1, []complex128{1i})
	b := []complex128{1}

	w, res, err := solve.RidgeNormal(a, b, 1e-8)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(w[0]-(-1i)), 1e-6)
	require.InDelta(t, 0, res, 1e-10)
}

// TestRidgeNormal_Overdetermined checks the residual of an inconsistent
// system: rows x=0 and x=2 meet in the middle at x=1, residual 1²+1² = 2.
func TestRidgeNormal_Overdetermined(t *testing.T) {
	a := mat.NewCDense(2, 1, []complex128{1, 1})
	b := []complex128{0, 2}

	w, res, err := solve.RidgeNormal(a, b, 1e-8)
	require.NoError(t, err)
	require.InDelta(t, 1, real(w[0]), 1e-6)
	require.InDelta(t, 2, res, 1e-6)
}

// TestRidgeNormal_Underdetermined verifies that the ridge term picks the
// minimum-norm solution of a rank-deficient system with zero residual.
func TestRidgeNormal_Underdetermined(t *testing.T) {
	a := mat.NewCDense(1, 2, []complex128{1, 1})
	b := []complex128{2}

	w, res, err := solve.RidgeNormal(a, b, 1e-8)
	require.NoError(t, err)
	require.InDelta(t, 1, real(w[0]), 1e-4)
	require.InDelta(t, 1, real(w[1]), 1e-4)
	require.InDelta(t, 0, res, 1e-10)
}

// TestRidgeNormal_ZeroRidgeSingular checks that disabling regularization on
// a singular system surfaces ErrSingularSystem instead of garbage.
func TestRidgeNormal_ZeroRidgeSingular(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{0, 0, 0, 0})
	b := []complex128{0, 0}

	_, _, err := solve.RidgeNormal(a, b, 0)
	require.ErrorIs(t, err, solve.ErrSingularSystem)
}

// TestRidgeNormal_DimensionMismatch rejects shape disagreements up front.
func TestRidgeNormal_DimensionMismatch(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	_, _, err := solve.RidgeNormal(a, []complex128{1}, 1e-8)
	require.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

// TestLeastSquares_Exact solves a consistent tall system exactly.
func TestLeastSquares_Exact(t *testing.T) {
	a := mat.NewCDense(2, 1, []complex128{1, 2})
	b := []complex128{1, 2}

	x, err := solve.LeastSquares(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(x[0]-1), tol)
}

// TestLeastSquares_ComplexRotation solves i·x = i+1: x = 1 − i.
func TestLeastSquares_ComplexRotation(t *testing.T) {
	a := mat.NewCDense(1, 1, []complex128{1i})
	b := []complex128{1i + 1}

	x, err := solve.LeastSquares(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0, cmplx.Abs(x[0]-(1-1i)), tol)
}

// TestLeastSquares_RankZero rejects the all-zero matrix.
func TestLeastSquares_RankZero(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	_, err := solve.LeastSquares(a, []complex128{1, 1})
	require.ErrorIs(t, err, solve.ErrSingularSystem)
}

// TestLeastSquares_DimensionMismatch rejects shape disagreements up front.
func TestLeastSquares_DimensionMismatch(t *testing.T) {
	a := mat.NewCDense(3, 1, nil)

	_, err := solve.LeastSquares(a, []complex128{1})
	require.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

// TestLeastSquares_AgreesWithRidge cross-checks the two entry points on a
// well-conditioned overdetermined system; with λ = 1e-8 the answers must
// coincide to well below the test tolerance.
func TestLeastSquares_AgreesWithRidge(t *testing.T) {
	a := mat.NewCDense(3, 2, []complex128{
		1, 2,
		3, 1i,
		0, 1,
	})
	b := []complex128{1, 1i, -1}

	x, err := solve.LeastSquares(a, b)
	require.NoError(t, err)

	w, _, err := solve.RidgeNormal(a, b, 1e-8)
	require.NoError(t, err)

	for i := range x {
		require.InDelta(t, 0, cmplx.Abs(x[i]-w[i]), 1e-5, "component %d", i)
	}
}

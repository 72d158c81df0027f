// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// defaultRCond is the singular-value cutoff used to estimate the effective
// rank in LeastSquares: singular values below rcond·σ_max are treated as zero.
const defaultRCond = 1e-15

// RidgeNormal solves the ridge-regularized normal equations
//
//	(AᴴA + λI) w = Aᴴb
//
// for the complex system A·w ≈ b and returns the solution together with the
// squared residual ‖Aw − b‖².
//
// Stage 1 (Validate): shapes of A and b must agree.
// Stage 2 (Realify):  embed A and b into an equivalent real system.
// Stage 3 (Factor):   form ArᵀAr + λI and factorize it with Cholesky.
// Stage 4 (Solve):    back-substitute and compute the residual.
//
// With λ > 0 the normal matrix is positive-definite regardless of the rank
// of A, so the factorization cannot fail; ErrSingularSystem is reachable
// only when the caller disables regularization by passing λ = 0.
//
// Complexity: O(m·n²) to form the normal matrix plus O(n³) to factorize,
// counted on the realified (doubled) dimensions.
func RidgeNormal(a *mat.CDense, b []complex128, lambda float64) (w []complex128, residual float64, err error) {
	m, n := a.Dims()
	if m == 0 || n == 0 || len(b) != m {
		return nil, 0, fmt.Errorf("solve: RidgeNormal: A is %d×%d, b has %d entries: %w",
			m, n, len(b), ErrDimensionMismatch)
	}

	ar := realify(a)
	br := realifyVec(b)
	nr := 2 * n

	// Normal matrix G = ArᵀAr + λI, symmetric by construction.
	var g mat.SymDense
	g.SymOuterK(1, ar.T())
	for i := 0; i < nr; i++ {
		g.SetSym(i, i, g.At(i, i)+lambda)
	}

	var chol mat.Cholesky
	if !chol.Factorize(&g) {
		return nil, 0, fmt.Errorf("solve: RidgeNormal: normal matrix is not positive-definite: %w",
			ErrSingularSystem)
	}

	atb := mat.NewVecDense(nr, nil)
	atb.MulVec(ar.T(), br)

	var wr mat.VecDense
	if err = chol.SolveVecTo(&wr, atb); err != nil {
		return nil, 0, fmt.Errorf("solve: RidgeNormal: %v: %w", err, ErrSingularSystem)
	}

	// Residual in the realified system equals the complex one: the embedding
	// is an isometry.
	var fitted, diff mat.VecDense
	fitted.MulVec(ar, &wr)
	diff.SubVec(&fitted, br)
	raw := diff.RawVector().Data
	residual = floats.Dot(raw, raw)

	return complexify(&wr, n), residual, nil
}

// LeastSquares computes the minimum-norm least-squares solution of the
// complex system A·x ≈ b through a thin, rank-revealing SVD.
//
// Unlike RidgeNormal this never squares the condition number of A, which
// matters for the small per-call systems built from sample decompositions,
// where a handful of samples can make A arbitrarily ill-conditioned.
//
// Returns ErrDimensionMismatch for incompatible shapes and ErrSingularSystem
// when the factorization fails or A has effective rank zero.
//
// Complexity: O(m·n·min(m,n)) on the realified dimensions.
func LeastSquares(a *mat.CDense, b []complex128) ([]complex128, error) {
	m, n := a.Dims()
	if m == 0 || n == 0 || len(b) != m {
		return nil, fmt.Errorf("solve: LeastSquares: A is %d×%d, b has %d entries: %w",
			m, n, len(b), ErrDimensionMismatch)
	}

	ar := realify(a)
	br := realifyVec(b)

	var svd mat.SVD
	if !svd.Factorize(ar, mat.SVDThin) {
		return nil, fmt.Errorf("solve: LeastSquares: SVD failed to converge: %w", ErrSingularSystem)
	}

	rank := svd.Rank(defaultRCond)
	if rank == 0 {
		return nil, fmt.Errorf("solve: LeastSquares: matrix has rank zero: %w", ErrSingularSystem)
	}

	var wr mat.VecDense
	svd.SolveVecTo(&wr, br, rank)

	return complexify(&wr, n), nil
}

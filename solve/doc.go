// Package solve provides the dense linear-algebra capability shared by the
// character and sheaf layers: a ridge-regularized normal-equations solve and
// a rank-revealing SVD least-squares solve, both over complex systems.
//
// Overview:
//
//   - RidgeNormal solves (AᴴA + λI) w = Aᴴb via a symmetric positive-definite
//     Cholesky factorization and reports the squared residual ‖Aw − b‖².
//     The ridge term λ > 0 keeps the normal matrix positive-definite even
//     when A is rank-deficient (e.g., more unknowns than rows).
//   - LeastSquares computes the minimum-norm least-squares solution of
//     A·x ≈ b through a thin SVD. Preferred over the normal equations for
//     small, possibly ill-conditioned systems, where squaring the condition
//     number is not acceptable.
//
// Complex systems and realification:
//
//	gonum's factorizations (mat.Cholesky, mat.SVD) operate on real matrices.
//	A complex m×n system embeds isometrically into a real 2m×2n one:
//
//	    A = R + iS   ↦   [[R, −S], [S, R]],    z = x + iy ↦ [x; y]
//
//	The embedding preserves the Euclidean norm and commutes with
//	matrix-vector products, so the realified least-squares problem has
//	exactly the solutions (and residual) of the complex one, and the
//	realified normal matrix of a Hermitian positive-definite system is
//	symmetric positive-definite. Both entry points realify internally;
//	callers only ever see *mat.CDense and []complex128.
//
// Errors (sentinel):
//
//   - ErrDimensionMismatch — len(b) does not match the row count of A,
//     or A has no rows/columns.
//   - ErrSingularSystem — the normal matrix is not positive-definite
//     (possible only with λ = 0), or the SVD reveals rank zero.
//
// All operations are deterministic, single-threaded, and allocate only
// transient working storage.
package solve

package solve

import "errors"

var (
	// ErrDimensionMismatch indicates that the shapes of A and b are
	// incompatible, or that A is degenerate (zero rows or columns).
	ErrDimensionMismatch = errors.New("solve: dimension mismatch between matrix and vector")

	// ErrSingularSystem indicates that the system admits no stable solution:
	// the normal matrix failed its positive-definite factorization (only
	// reachable with a zero ridge term) or the SVD revealed rank zero.
	ErrSingularSystem = errors.New("solve: system is singular")
)

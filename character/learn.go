package character

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/solve"
)

// LearnWeights fits one coefficient per character so that the reweighted
// reconstruction of each sample best matches its target in the
// least-squares sense.
//
// The system stacks, per sample, the flattened projections as columns of a
// (len(samples)·L·d)×n design matrix against the flattened target. Samples
// shorter than the group order contribute fewer projections; the remaining
// columns stay zero for those block rows. The solve goes through a
// rank-revealing SVD (solve.LeastSquares) rather than the normal equations:
// with few samples the stacked matrix can be arbitrarily ill-conditioned,
// and squaring its condition number would destroy the small coefficients.
//
// Errors:
//   - ErrNoSamples       — samples is empty.
//   - ErrLengthMismatch  — len(samples) != len(targets).
//   - ErrShapeMismatch   — a sample or target deviates from the shape of
//     samples[0].
//
// Complexity: O(s·n²·L·d) to build plus the SVD of an (s·L·d)×n system.
func (g *Group) LearnWeights(samples, targets []*mat.CDense) ([]complex128, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(samples) != len(targets) {
		return nil, ErrLengthMismatch
	}

	rows, cols := samples[0].Dims()
	d := rows * cols

	a := mat.NewCDense(len(samples)*d, g.n, nil)
	b := make([]complex128, len(samples)*d)

	for i := range samples {
		if r, c := samples[i].Dims(); r != rows || c != cols {
			return nil, fmt.Errorf("character: sample %d is %d×%d, want %d×%d: %w",
				i, r, c, rows, cols, ErrShapeMismatch)
		}
		if r, c := targets[i].Dims(); r != rows || c != cols {
			return nil, fmt.Errorf("character: target %d is %d×%d, want %d×%d: %w",
				i, r, c, rows, cols, ErrShapeMismatch)
		}

		projs := g.Decompose(samples[i])
		for j := range projs {
			for k := 0; k < d; k++ {
				a.Set(i*d+k, j, projs[j].At(k/cols, k%cols))
			}
		}
		for k := 0; k < d; k++ {
			b[i*d+k] = targets[i].At(k/cols, k%cols)
		}
	}

	coeffs, err := solve.LeastSquares(a, b)
	if err != nil {
		return nil, fmt.Errorf("character: LearnWeights: %w", err)
	}

	return coeffs, nil
}

package character

import (
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// flatten copies the L×d matrix v into a row-major complex slice.
func flatten(v *mat.CDense) []complex128 {
	rows, cols := v.Dims()
	out := make([]complex128, rows*cols)
	for i := 0; i < rows; i++ {
		for c := 0; c < cols; c++ {
			out[i*cols+c] = v.At(i, c)
		}
	}

	return out
}

// rotateFlat is Rotate on row-major flat storage: row i of the result is
// row (i − k) mod rows of data. k must already be normalized to [0, rows).
func rotateFlat(data []complex128, rows, cols, k int) []complex128 {
	out := make([]complex128, len(data))
	for i := 0; i < rows; i++ {
		src := (i + rows - k) % rows
		copy(out[i*cols:(i+1)*cols], data[src*cols:(src+1)*cols])
	}

	return out
}

// Project extracts the component of V lying in the subspace of character j:
//
//	Proj_j(V) = (1/m) Σ_{k=0}^{m-1} conj(χ_j(k)) · Rotate(V, k),  m = min(L, n)
//
// where L is the number of rows of V. Truncating the sum at m keeps the
// averaging well-defined for sequences shorter than the group order.
// Returns ErrIndexOutOfRange if j is outside [0, n).
// Complexity: O(m·L·d).
func (g *Group) Project(v *mat.CDense, j int) (*mat.CDense, error) {
	if j < 0 || j >= g.n {
		return nil, ErrIndexOutOfRange
	}

	rows, cols := v.Dims()
	m := rows
	if g.n < m {
		m = g.n
	}

	data := flatten(v)
	acc := make([]complex128, len(data))
	for k := 0; k < m; k++ {
		weight := cmplx.Conj(g.table.At(j, k))
		cmplxs.AddScaled(acc, weight, rotateFlat(data, rows, cols, k))
	}
	cmplxs.Scale(complex(1/float64(m), 0), acc)

	return mat.NewCDense(rows, cols, acc), nil
}

// Decompose materializes the projections of V onto characters 0..m−1,
// m = min(L, n). The result is a pure function of V: decomposing the same
// sequence twice yields identical projections.
// Complexity: O(m²·L·d).
func (g *Group) Decompose(v *mat.CDense) []*mat.CDense {
	rows, _ := v.Dims()
	m := rows
	if g.n < m {
		m = g.n
	}

	projs := make([]*mat.CDense, m)
	for j := 0; j < m; j++ {
		projs[j], _ = g.Project(v, j) // j < m ≤ n, cannot be out of range
	}

	return projs
}

// Reconstruct forms the weighted sum Σ_j coefficients[j] · projections[j].
// Indices beyond the shorter of the two slices are ignored, mirroring a
// truncated decomposition. Reconstructing a full decomposition with all-ones
// coefficients recovers the original sequence up to floating-point error
// (Maschke completeness).
// Returns ErrEmptyProjections if projections is empty and ErrShapeMismatch
// if the projections disagree on dimensions.
func (g *Group) Reconstruct(coefficients []complex128, projections []*mat.CDense) (*mat.CDense, error) {
	if len(projections) == 0 {
		return nil, ErrEmptyProjections
	}

	rows, cols := projections[0].Dims()
	acc := make([]complex128, rows*cols)

	terms := len(projections)
	if len(coefficients) < terms {
		terms = len(coefficients)
	}
	for j := 0; j < terms; j++ {
		r, c := projections[j].Dims()
		if r != rows || c != cols {
			return nil, ErrShapeMismatch
		}
		cmplxs.AddScaled(acc, coefficients[j], flatten(projections[j]))
	}

	return mat.NewCDense(rows, cols, acc), nil
}

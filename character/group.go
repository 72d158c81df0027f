package character

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the character transform.
var (
	// ErrNonPositiveOrder indicates that a Group was requested with order ≤ 0.
	ErrNonPositiveOrder = errors.New("character: group order must be positive")

	// ErrIndexOutOfRange indicates a character or group-element index outside [0, n).
	ErrIndexOutOfRange = errors.New("character: index out of range")

	// ErrEmptyProjections indicates that Reconstruct received no projections.
	ErrEmptyProjections = errors.New("character: projections must be non-empty")

	// ErrNoSamples indicates that LearnWeights received an empty sample set.
	ErrNoSamples = errors.New("character: samples must be non-empty")

	// ErrLengthMismatch indicates that the sample and target counts differ.
	ErrLengthMismatch = errors.New("character: samples and targets must have equal length")

	// ErrShapeMismatch indicates samples or targets of inconsistent dimensions.
	ErrShapeMismatch = errors.New("character: samples and targets must share one shape")
)

// Group holds the character table of the cyclic group Z/nZ.
//
// The table is the n×n DFT matrix χ_j(k) = ω^(j·k), ω = exp(2πi/n),
// computed once at construction. A Group is immutable afterwards and may be
// shared freely between goroutines.
type Group struct {
	n     int         // group order
	omega complex128  // primitive n-th root of unity
	table *mat.CDense // n×n character table, row j = character χ_j
}

// New constructs the character table of the cyclic group of order n.
// Returns ErrNonPositiveOrder if n ≤ 0.
// Complexity: O(n²) time and memory for the table.
func New(n int) (*Group, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	table := mat.NewCDense(n, n, nil)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			// Reduce the exponent mod n before exponentiating: ω^(jk) depends
			// only on jk mod n, and small angles keep the table accurate for
			// large orders.
			angle := 2 * math.Pi * float64((j*k)%n) / float64(n)
			table.Set(j, k, cmplx.Exp(complex(0, angle)))
		}
	}

	return &Group{
		n:     n,
		omega: cmplx.Exp(complex(0, 2*math.Pi/float64(n))),
		table: table,
	}, nil
}

// Order returns the group order n.
func (g *Group) Order() int { return g.n }

// Omega returns the primitive n-th root of unity exp(2πi/n).
func (g *Group) Omega() complex128 { return g.omega }

// Character returns χ_j(k) = ω^(j·k) for 0 ≤ j, k < n.
// Returns ErrIndexOutOfRange for any index outside the table.
func (g *Group) Character(j, k int) (complex128, error) {
	if j < 0 || j >= g.n || k < 0 || k >= g.n {
		return 0, ErrIndexOutOfRange
	}

	return g.table.At(j, k), nil
}

// Table returns a copy of the n×n character table. Row j holds the values
// of χ_j over the group elements, so the table is exactly the DFT matrix.
func (g *Group) Table() *mat.CDense {
	t := mat.NewCDense(g.n, g.n, nil)
	t.Copy(g.table)

	return t
}

// Rotate applies the group action to sequence data: row i of the result is
// row (i − k) mod L of V, i.e. the rows of V shifted down by k positions
// with wraparound. Rotate(V, 0) returns a copy equal to V; negative k is
// normalized mod L.
// Complexity: O(L·d) where V is L×d.
func (g *Group) Rotate(v *mat.CDense, k int) *mat.CDense {
	rows, cols := v.Dims()
	out := mat.NewCDense(rows, cols, nil)

	k = ((k % rows) + rows) % rows
	for i := 0; i < rows; i++ {
		src := (i + rows - k) % rows
		for c := 0; c < cols; c++ {
			out.Set(i, c, v.At(src, c))
		}
	}

	return out
}

package feature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/character"
)

// Sentinel errors returned by the feature builder.
var (
	// ErrBadShape indicates a non-positive patch shape or a sample whose
	// dimensions do not match the builder's nPositions×1 contract.
	ErrBadShape = errors.New("feature: sample shape does not match builder configuration")
)

// Builder turns nPositions×1 samples into flat feature rows of width
// nPositions·nCharacters. The character table is computed once at
// construction; a Builder is immutable and safe for concurrent readers.
type Builder struct {
	group       *character.Group
	nPositions  int
	nCharacters int
}

// NewBuilder constructs a feature builder for the given patch shape.
// Returns ErrBadShape if either dimension is < 1.
// Complexity: O(nPositions²) for the character table.
func NewBuilder(nPositions, nCharacters int) (*Builder, error) {
	if nPositions < 1 || nCharacters < 1 {
		return nil, fmt.Errorf("feature: %d positions, %d characters: %w",
			nPositions, nCharacters, ErrBadShape)
	}

	group, err := character.New(nPositions)
	if err != nil {
		return nil, fmt.Errorf("feature: %w", err)
	}

	return &Builder{group: group, nPositions: nPositions, nCharacters: nCharacters}, nil
}

// Width returns the feature-row length nPositions·nCharacters.
func (b *Builder) Width() int { return b.nPositions * b.nCharacters }

// Positions returns the configured sequence length.
func (b *Builder) Positions() int { return b.nPositions }

// Characters returns the number of character projections retained.
func (b *Builder) Characters() int { return b.nCharacters }

// Row computes the feature row of V: entry p·nCharacters + j holds the
// value of projection j at position p. V must be nPositions×1; any other
// shape returns ErrBadShape.
// Complexity: O(nCharacters·nPositions²).
func (b *Builder) Row(v *mat.CDense) ([]complex128, error) {
	rows, cols := v.Dims()
	if rows != b.nPositions || cols != 1 {
		return nil, fmt.Errorf("feature: sample is %d×%d, want %d×1: %w",
			rows, cols, b.nPositions, ErrBadShape)
	}

	projs := b.group.Decompose(v)

	row := make([]complex128, b.Width())
	for p := 0; p < b.nPositions; p++ {
		for j := 0; j < b.nCharacters; j++ {
			if j >= len(projs) {
				continue // truncated decomposition, column stays zero
			}
			row[p*b.nCharacters+j] = projs[j].At(p, 0)
		}
	}

	return row, nil
}

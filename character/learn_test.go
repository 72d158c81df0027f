package character_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/character"
)

// TestLearnWeights_Identity fits the identity map. A sequence with energy in
// every character subspace has linearly independent projections, so the
// unique least-squares solution of Σ c_j·Proj_j(V) = V is all ones.
func TestLearnWeights_Identity(t *testing.T) {
	g, err := character.New(4)
	require.NoError(t, err)

	v := seq(1, 2, 3, 4)
	coeffs, err := g.LearnWeights([]*mat.CDense{v}, []*mat.CDense{v})
	require.NoError(t, err)
	require.Len(t, coeffs, 4)

	for j, c := range coeffs {
		require.InDelta(t, 0, cmplx.Abs(c-1), 1e-8, "coefficient %d", j)
	}
}

// TestLearnWeights_SingleCharacterTarget keeps only the mean component: the
// target is the constant 2.5 sequence, so c_0 = 1 and the rest vanish.
func TestLearnWeights_SingleCharacterTarget(t *testing.T) {
	g, err := character.New(4)
	require.NoError(t, err)

	v := seq(1, 2, 3, 4)
	target := seq(2.5, 2.5, 2.5, 2.5)

	coeffs, err := g.LearnWeights([]*mat.CDense{v}, []*mat.CDense{target})
	require.NoError(t, err)

	require.InDelta(t, 0, cmplx.Abs(coeffs[0]-1), 1e-8)
	for j := 1; j < 4; j++ {
		require.InDelta(t, 0, cmplx.Abs(coeffs[j]), 1e-8, "coefficient %d", j)
	}
}

// TestLearnWeights_MultipleSamples stacks two samples with one shared
// coefficient vector and checks the joint fit.
func TestLearnWeights_MultipleSamples(t *testing.T) {
	g, err := character.New(3)
	require.NoError(t, err)

	samples := []*mat.CDense{seq(1, 2, 3), seq(2, 0, -1)}
	targets := []*mat.CDense{seq(1, 2, 3), seq(2, 0, -1)}

	coeffs, err := g.LearnWeights(samples, targets)
	require.NoError(t, err)
	for j, c := range coeffs {
		require.InDelta(t, 0, cmplx.Abs(c-1), 1e-8, "coefficient %d", j)
	}
}

// TestLearnWeights_Errors covers the input-validation sentinels.
func TestLearnWeights_Errors(t *testing.T) {
	g, err := character.New(3)
	require.NoError(t, err)

	_, err = g.LearnWeights(nil, nil)
	require.ErrorIs(t, err, character.ErrNoSamples)

	_, err = g.LearnWeights([]*mat.CDense{seq(1, 2, 3)}, nil)
	require.ErrorIs(t, err, character.ErrLengthMismatch)

	_, err = g.LearnWeights(
		[]*mat.CDense{seq(1, 2, 3), seq(1, 2)},
		[]*mat.CDense{seq(1, 2, 3), seq(1, 2)},
	)
	require.ErrorIs(t, err, character.ErrShapeMismatch)
}

// Package sheaf core types: patches, gluing constraints, problems and
// solutions. The geometry metaphor is deliberate — a Problem is a cover of
// a dataset by local least-squares tasks, the gluings are the overlap
// conditions, and the solution's residual is the obstruction to patching
// the local solutions into a global one.
package sheaf

import "gonum.org/v1/gonum/mat"

// PatchConfig describes the feature shape of one patch. Immutable once
// created; the learner stores a copy per patch name during Fit so that
// later predictions rebuild the identical feature transform.
//
// NPositions  – sequence length (rows of every sample), ≥ 1.
// NCharacters – number of character projections retained per position;
//
//	values above NPositions contribute zero columns, so
//	NCharacters ≤ NPositions is the useful range.
//
// DModel      – embedding width. The current model assumes scalar targets
//
//	(DModel = 1); any other value is rejected at validation.
type PatchConfig struct {
	NPositions  int
	NCharacters int
	DModel      int
}

// Weights returns the number of global weight slots the patch occupies:
// NPositions · NCharacters.
func (c PatchConfig) Weights() int { return c.NPositions * c.NCharacters }

// Patch is one independent local least-squares task: ordered samples
// (each NPositions×1), targets of equal count (each 1×1), and the feature
// configuration. Patch names key the problem and must be unique within it.
type Patch struct {
	Name    string
	Samples []*mat.CDense
	Targets []*mat.CDense
	Config  PatchConfig
}

// GluingConstraint ties the predictions of two patches together at a shared
// observation: whatever weights the solve picks, patch Patch1's prediction
// on ConstraintData1 must equal patch Patch2's prediction on
// ConstraintData2. Each constraint datum must match the shape expected by
// its own patch's configuration.
type GluingConstraint struct {
	Patch1          string
	Patch2          string
	ConstraintData1 *mat.CDense
	ConstraintData2 *mat.CDense
}

// Problem is an ordered collection of patches plus gluing constraints.
// It is read-only to the solver: Fit never mutates a Problem.
type Problem struct {
	Patches []Patch
	Gluings []GluingConstraint
}

// Solution is the result of one Fit: per-patch weight matrices
// (NPositions×NCharacters, row-major over [position, character]), the
// scalar obstruction, and the convergence flag.
//
// A Solution is owned by the learner and exposed by reference until the
// next Fit replaces it wholesale; treat it as immutable.
type Solution struct {
	// Weights maps each patch name to its learned weight matrix.
	Weights map[string]*mat.CDense

	// ResidualError is the squared residual ‖Aw − b‖² of the stacked
	// system — the obstruction. Exactly 0 when the raw residual fell
	// below the learner's tolerance.
	ResidualError float64

	// Converged is true iff ResidualError was floored to exactly 0.
	Converged bool
}

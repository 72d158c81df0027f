package sheaf_test

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/sheaf"
)

// seq wraps a real-valued column sequence into an L×1 complex matrix.
func seq(values ...float64) *mat.CDense {
	data := make([]complex128, len(values))
	for i, v := range values {
		data[i] = complex(v, 0)
	}

	return mat.NewCDense(len(values), 1, data)
}

// scalar wraps a real target value into a 1×1 complex matrix.
func scalar(v float64) *mat.CDense {
	return mat.NewCDense(1, 1, []complex128{complex(v, 0)})
}

// scalarCfg is the minimal one-weight patch shape used by the analytic tests.
var scalarCfg = sheaf.PatchConfig{NPositions: 1, NCharacters: 1, DModel: 1}

// fullCfg is the four-position, four-character shape of the progression
// scenario.
var fullCfg = sheaf.PatchConfig{NPositions: 4, NCharacters: 4, DModel: 1}

// twoScalarPatches is the conflicting left/right pair used by the gluing
// tests: independently both patches fit exactly (left learns w=1, right
// learns w=2), but any gluing at a shared point forces their single weights
// together.
func twoScalarPatches() []sheaf.Patch {
	return []sheaf.Patch{
		{
			Name:    "left",
			Samples: []*mat.CDense{seq(1), seq(2)},
			Targets: []*mat.CDense{scalar(1), scalar(2)},
			Config:  scalarCfg,
		},
		{
			Name:    "right",
			Samples: []*mat.CDense{seq(1), seq(2)},
			Targets: []*mat.CDense{scalar(2), scalar(4)},
			Config:  scalarCfg,
		},
	}
}

// boundaryGluing glues left and right at the shared observation V = [1].
func boundaryGluing() sheaf.GluingConstraint {
	return sheaf.GluingConstraint{
		Patch1:          "left",
		Patch2:          "right",
		ConstraintData1: seq(1),
		ConstraintData2: seq(1),
	}
}

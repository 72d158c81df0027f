package sheaf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/feature"
)

// span is one patch's contiguous slot range in the global weight vector.
type span struct {
	offset int // first column owned by the patch
	width  int // NPositions · NCharacters
}

// assembly is the staged result of turning a Problem into a stacked linear
// system. Everything here lives on the stack of one Fit call until the
// solve succeeds; only then does the learner commit spans, configs and
// builders, which keeps a failed Fit from corrupting earlier state.
type assembly struct {
	order    []string
	spans    map[string]span
	configs  map[string]PatchConfig
	builders map[string]*feature.Builder

	a *mat.CDense  // stacked system, (localRows+gluingRows) × cols
	b []complex128 // stacked targets

	localRows  int
	gluingRows int
	cols       int
}

// assemble builds the global system for a validated problem.
//
// Column spans accumulate in patch declaration order; each patch's feature
// rows are written directly into the global matrix at (rowOffset,
// span.offset), so the implicit block-diagonal structure never materializes
// zero-padded local blocks. Gluing rows follow beneath the local rows:
// +features under patch 1 at its span, −features under patch 2 at its span,
// target 0.
//
// Complexity: O(total samples · max width · NPositions) feature work plus
// the O(rows · cols) system fill.
func assemble(p *Problem) (*assembly, error) {
	asm := &assembly{
		order:    make([]string, 0, len(p.Patches)),
		spans:    make(map[string]span, len(p.Patches)),
		configs:  make(map[string]PatchConfig, len(p.Patches)),
		builders: make(map[string]*feature.Builder, len(p.Patches)),
	}

	// First pass: spans, builders and row accounting.
	for i := range p.Patches {
		patch := &p.Patches[i]
		builder, err := feature.NewBuilder(patch.Config.NPositions, patch.Config.NCharacters)
		if err != nil {
			return nil, fmt.Errorf("sheaf: patch %q: %w", patch.Name, err)
		}

		asm.order = append(asm.order, patch.Name)
		asm.spans[patch.Name] = span{offset: asm.cols, width: patch.Config.Weights()}
		asm.configs[patch.Name] = patch.Config
		asm.builders[patch.Name] = builder

		asm.cols += patch.Config.Weights()
		asm.localRows += len(patch.Samples)
	}
	asm.gluingRows = len(p.Gluings)

	asm.a = mat.NewCDense(asm.localRows+asm.gluingRows, asm.cols, nil)
	asm.b = make([]complex128, asm.localRows+asm.gluingRows)

	// Second pass: local rows.
	row := 0
	for i := range p.Patches {
		patch := &p.Patches[i]
		sp := asm.spans[patch.Name]
		builder := asm.builders[patch.Name]

		for s, sample := range patch.Samples {
			features, err := builder.Row(sample)
			if err != nil {
				return nil, fmt.Errorf("sheaf: patch %q, sample %d: %w", patch.Name, s, err)
			}
			for c, v := range features {
				asm.a.Set(row, sp.offset+c, v)
			}
			asm.b[row] = patch.Targets[s].At(0, 0)
			row++
		}
	}

	// Third pass: gluing rows (zero rows when no gluings — zero constraints
	// imposed, not an error).
	for i, glue := range p.Gluings {
		f1, err := asm.builders[glue.Patch1].Row(glue.ConstraintData1)
		if err != nil {
			return nil, fmt.Errorf("sheaf: gluing %d, side %q: %w", i, glue.Patch1, err)
		}
		f2, err := asm.builders[glue.Patch2].Row(glue.ConstraintData2)
		if err != nil {
			return nil, fmt.Errorf("sheaf: gluing %d, side %q: %w", i, glue.Patch2, err)
		}

		sp1, sp2 := asm.spans[glue.Patch1], asm.spans[glue.Patch2]
		for c, v := range f1 {
			asm.a.Set(row, sp1.offset+c, v)
		}
		for c, v := range f2 {
			asm.a.Set(row, sp2.offset+c, asm.a.At(row, sp2.offset+c)-v)
		}
		asm.b[row] = 0
		row++
	}

	return asm, nil
}

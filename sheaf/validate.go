package sheaf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Validate checks the structural invariants of the problem:
//
//   - at least one patch, all names non-empty and unique;
//   - every patch config positive, scalar-target (DModel = 1);
//   - per patch: at least one sample, sample and target counts equal,
//     samples shaped NPositions×1, targets 1×1;
//   - every gluing references two existing patches and carries constraint
//     data shaped for its respective patch.
//
// Fit calls Validate before touching any learner state, so a failed Fit
// can never leave a half-written configuration behind.
// Complexity: O(total samples + gluings).
func (p *Problem) Validate() error {
	if len(p.Patches) == 0 {
		return ErrNoPatches
	}

	seen := make(map[string]PatchConfig, len(p.Patches))
	for i := range p.Patches {
		patch := &p.Patches[i]
		if patch.Name == "" {
			return fmt.Errorf("sheaf: patch %d: %w", i, ErrEmptyPatchName)
		}
		if _, dup := seen[patch.Name]; dup {
			return fmt.Errorf("sheaf: patch %q: %w", patch.Name, ErrDuplicatePatch)
		}

		if err := validatePatch(patch); err != nil {
			return err
		}
		seen[patch.Name] = patch.Config
	}

	for i, glue := range p.Gluings {
		cfg1, ok := seen[glue.Patch1]
		if !ok {
			return fmt.Errorf("sheaf: gluing %d references %q: %w", i, glue.Patch1, ErrUnknownPatch)
		}
		cfg2, ok := seen[glue.Patch2]
		if !ok {
			return fmt.Errorf("sheaf: gluing %d references %q: %w", i, glue.Patch2, ErrUnknownPatch)
		}

		if err := validateSampleShape(glue.ConstraintData1, cfg1); err != nil {
			return fmt.Errorf("sheaf: gluing %d, side %q: %w", i, glue.Patch1, err)
		}
		if err := validateSampleShape(glue.ConstraintData2, cfg2); err != nil {
			return fmt.Errorf("sheaf: gluing %d, side %q: %w", i, glue.Patch2, err)
		}
	}

	return nil
}

// validatePatch checks one patch's config, counts and shapes.
func validatePatch(patch *Patch) error {
	cfg := patch.Config
	if cfg.NPositions < 1 || cfg.NCharacters < 1 {
		return fmt.Errorf("sheaf: patch %q: %w", patch.Name, ErrBadConfig)
	}
	if cfg.DModel != 1 {
		return fmt.Errorf("sheaf: patch %q has d_model=%d: %w", patch.Name, cfg.DModel, ErrScalarTargetOnly)
	}
	if len(patch.Samples) == 0 {
		return fmt.Errorf("sheaf: patch %q: %w", patch.Name, ErrNoSamples)
	}
	if len(patch.Samples) != len(patch.Targets) {
		return fmt.Errorf("sheaf: patch %q has %d samples, %d targets: %w",
			patch.Name, len(patch.Samples), len(patch.Targets), ErrSampleTargetMismatch)
	}

	for i, sample := range patch.Samples {
		if err := validateSampleShape(sample, cfg); err != nil {
			return fmt.Errorf("sheaf: patch %q, sample %d: %w", patch.Name, i, err)
		}
	}
	for i, target := range patch.Targets {
		if target == nil {
			return fmt.Errorf("sheaf: patch %q, target %d is nil: %w", patch.Name, i, ErrScalarTargetOnly)
		}
		if r, c := target.Dims(); r != 1 || c != 1 {
			return fmt.Errorf("sheaf: patch %q, target %d is %d×%d: %w",
				patch.Name, i, r, c, ErrScalarTargetOnly)
		}
	}

	return nil
}

// validateSampleShape checks that one sample matrix is NPositions×1.
func validateSampleShape(sample *mat.CDense, cfg PatchConfig) error {
	if sample == nil {
		return fmt.Errorf("sample is nil: %w", ErrSampleShape)
	}
	if r, c := sample.Dims(); r != cfg.NPositions || c != 1 {
		return fmt.Errorf("sample is %d×%d, want %d×1: %w", r, c, cfg.NPositions, ErrSampleShape)
	}

	return nil
}

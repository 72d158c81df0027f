package sheaf

import "gonum.org/v1/gonum/mat"

// Conditioning maps one (sample, target) pair to the name of the patch it
// belongs to. It is the automated patch-discovery hook: any deterministic
// keying of the data — by regime, by parity, by a router's decision —
// induces a cover of the dataset.
type Conditioning func(sample, target *mat.CDense) string

// Partition builds a Problem from a flat dataset by keying every pair
// through the conditioning function. All patches share one configuration;
// patch order is the first-occurrence order of their keys, so the same data
// and function always produce the same problem. The gluings are attached
// verbatim — they may reference the partition keys and are validated by
// Fit, not here.
//
// Errors:
//   - ErrNilConditioning       — cond is nil.
//   - ErrNoSamples             — samples is empty.
//   - ErrSampleTargetMismatch  — len(samples) != len(targets).
//
// Complexity: O(len(samples)).
func Partition(samples, targets []*mat.CDense, cfg PatchConfig, cond Conditioning, gluings []GluingConstraint) (*Problem, error) {
	if cond == nil {
		return nil, ErrNilConditioning
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(samples) != len(targets) {
		return nil, ErrSampleTargetMismatch
	}

	index := make(map[string]int)
	p := &Problem{Gluings: gluings}

	for i := range samples {
		key := cond(samples[i], targets[i])
		at, ok := index[key]
		if !ok {
			at = len(p.Patches)
			index[key] = at
			p.Patches = append(p.Patches, Patch{Name: key, Config: cfg})
		}
		p.Patches[at].Samples = append(p.Patches[at].Samples, samples[i])
		p.Patches[at].Targets = append(p.Patches[at].Targets, targets[i])
	}

	return p, nil
}

package sheaf

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sheaflearn/feature"
	"github.com/katalvlaran/sheaflearn/solve"
)

// Learner fits sheaf problems and answers per-patch prediction queries.
//
// State discipline: the patch-configuration map, the column spans and the
// last Solution are written only by a successful Fit (single writer) and
// read by Predict/Solution. A Learner is "fitted" only after the first
// successful Fit; a failed Fit leaves all previous state untouched.
//
// Not safe for a concurrent Fit; Predict may run concurrently with Predict.
type Learner struct {
	opts options

	configs  map[string]PatchConfig
	spans    map[string]span
	builders map[string]*feature.Builder
	solution *Solution
	fitted   bool
}

// NewLearner constructs a Learner with the documented defaults, overridden
// by any options (WithRidge, WithTolerance, WithTrace).
func NewLearner(opts ...Option) *Learner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Learner{opts: o}
}

// Fit assembles the problem into one stacked system, solves the
// ridge-regularized normal equations, and commits the unpacked solution.
//
// The returned Solution is the same value later exposed by Solution();
// it is replaced wholesale on the next successful Fit.
//
// Errors: validation sentinels for malformed problems (the learner's state
// is untouched on any error path) and solve.ErrSingularSystem when
// regularization was disabled and the system is degenerate.
func (l *Learner) Fit(p *Problem) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	asm, err := assemble(p)
	if err != nil {
		return nil, err
	}
	l.traceAssembly(p, asm)

	w, residual, err := solve.RidgeNormal(asm.a, asm.b, l.opts.ridge)
	if err != nil {
		return nil, fmt.Errorf("sheaf: global solve: %w", err)
	}
	if residual < l.opts.tolerance {
		residual = 0
	}

	sol := unpack(w, asm, residual)
	l.tracef("solved: %d weights, obstruction %.6e, converged %t\n",
		len(w), sol.ResidualError, sol.Converged)

	// Commit: replace prior state wholesale only after full success.
	l.configs = asm.configs
	l.spans = asm.spans
	l.builders = asm.builders
	l.solution = sol
	l.fitted = true

	return sol, nil
}

// Predict recomputes the feature row of v with the stored configuration of
// the named patch and returns its dot product with the patch's flattened
// learned weights. Predictions are complex; callers with real targets take
// the real part.
//
// Errors: ErrNotFitted before any successful Fit, ErrUnknownPatch for
// names absent from the last fitted problem, feature.ErrBadShape for
// samples that do not match the patch's configuration.
func (l *Learner) Predict(patchName string, v *mat.CDense) (complex128, error) {
	if !l.fitted {
		return 0, ErrNotFitted
	}

	cfg, ok := l.configs[patchName]
	if !ok {
		return 0, fmt.Errorf("sheaf: predict %q: %w", patchName, ErrUnknownPatch)
	}

	row, err := l.builders[patchName].Row(v)
	if err != nil {
		return 0, fmt.Errorf("sheaf: predict %q: %w", patchName, err)
	}

	// Flatten the weight matrix in the same row-major [position, character]
	// order the feature row uses.
	weights := l.solution.Weights[patchName]
	flat := make([]complex128, cfg.Weights())
	for p := 0; p < cfg.NPositions; p++ {
		for j := 0; j < cfg.NCharacters; j++ {
			flat[p*cfg.NCharacters+j] = weights.At(p, j)
		}
	}

	// Plain bilinear product, no conjugation: the same product the stacked
	// system applies to w, so a prediction at a gluing point reproduces the
	// constrained value exactly.
	cmplxs.Mul(flat, row)

	return cmplxs.Sum(flat), nil
}

// Solution returns the last fitted solution by reference, or nil before the
// first successful Fit.
func (l *Learner) Solution() *Solution { return l.solution }

// IsFitted reports whether a successful Fit has occurred.
func (l *Learner) IsFitted() bool { return l.fitted }

// unpack slices the flat weight vector at each patch's span and reshapes it
// row-major into an NPositions×NCharacters matrix.
func unpack(w []complex128, asm *assembly, residual float64) *Solution {
	sol := &Solution{
		Weights:       make(map[string]*mat.CDense, len(asm.order)),
		ResidualError: residual,
		Converged:     residual == 0,
	}

	for _, name := range asm.order {
		sp := asm.spans[name]
		cfg := asm.configs[name]

		data := make([]complex128, sp.width)
		copy(data, w[sp.offset:sp.offset+sp.width])
		sol.Weights[name] = mat.NewCDense(cfg.NPositions, cfg.NCharacters, data)
	}

	return sol
}

// traceAssembly writes the pre-solve summary to the trace writer, if any.
func (l *Learner) traceAssembly(p *Problem, asm *assembly) {
	if l.opts.trace == nil {
		return
	}

	l.tracef("fitting sheaf: %d patches, %d gluings, %d components\n",
		len(p.Patches), len(p.Gluings), len(p.Components()))
	for _, name := range asm.order {
		sp := asm.spans[name]
		l.tracef("  patch %q: %d samples, %d weights (columns %d..%d)\n",
			name, len(p.Patches[patchIndex(p, name)].Samples), sp.width,
			sp.offset, sp.offset+sp.width-1)
	}
	l.tracef("global system: %d rows = %d local + %d gluing, %d columns\n",
		asm.localRows+asm.gluingRows, asm.localRows, asm.gluingRows, asm.cols)
}

// tracef is fmt.Fprintf to the configured trace writer, or a no-op.
func (l *Learner) tracef(format string, args ...any) {
	if l.opts.trace == nil {
		return
	}
	fmt.Fprintf(l.opts.trace, format, args...)
}

// patchIndex locates a patch by name in declaration order.
func patchIndex(p *Problem, name string) int {
	for i := range p.Patches {
		if p.Patches[i].Name == name {
			return i
		}
	}

	return -1
}

// Package sheaf assembles independent local least-squares problems
// ("patches") and pairwise consistency constraints ("gluings") into one
// global linear system, solves it in closed form, and reports the residual
// as the obstruction to exact global consistency.
//
// Overview:
//
//   - Each Patch carries ordered samples and targets plus a PatchConfig
//     describing its feature shape. Per patch, the assembler builds a local
//     design matrix of character-feature rows (see package feature) and
//     assigns the patch a contiguous span of columns in the global weight
//     vector — an arena of weight slots, so local blocks never materialize
//     zero-padded full-width copies.
//   - Each GluingConstraint contributes one row tying two patches together:
//     +features of its overlap sample under patch 1, −features under
//     patch 2, target 0. The row reads "both patches must predict the same
//     value at the shared point".
//   - Fit stacks everything into A·w ≈ b and solves the ridge-regularized
//     normal equations (AᴴA + λI)w = Aᴴb through solve.RidgeNormal. The
//     squared residual ‖Aw − b‖² is the obstruction: zero means the local
//     fits and the gluing constraints are simultaneously, exactly
//     satisfiable; anything else quantifies the unavoidable trade-off.
//     Residuals below the tolerance are floored to exactly 0, and
//     Converged reports that flooring.
//   - Predict recomputes the feature row of a new sample with the fitted
//     patch's stored configuration and dots it with the patch's learned
//     weights.
//
// Determinism:
//
//   - Column spans accumulate in patch declaration order, gluing rows in
//     gluing declaration order; identical problems produce identical
//     systems, solutions and residuals. There is no randomness anywhere.
//
// Errors (sentinel):
//
//   - ErrNilProblem, ErrNoPatches, ErrEmptyPatchName, ErrDuplicatePatch —
//     malformed problem structure.
//   - ErrBadConfig, ErrScalarTargetOnly, ErrNoSamples,
//     ErrSampleTargetMismatch, ErrSampleShape — malformed patch contents.
//   - ErrUnknownPatch — a gluing or a prediction references a patch name
//     absent from the problem / the last fit.
//   - ErrNotFitted — Predict or Solution use before a successful Fit.
//   - solve.ErrSingularSystem — surfaces from Fit only when the ridge term
//     was explicitly disabled via WithRidge(0).
//
// Atomicity:
//
//   - Fit either completes and replaces the learner's state wholesale, or
//     fails and leaves the previous fit (configs, spans, solution) fully
//     intact. All staging happens on local values; commit is the last step.
//
// Thread safety:
//
//   - A Learner is not safe for concurrent use with an in-flight Fit.
//     Predict only reads committed state, so concurrent Predict calls are
//     fine; synchronize Fit externally (one exclusive lock around Fit).
//
// Example usage:
//
//	learner := sheaf.NewLearner()
//	sol, err := learner.Fit(&sheaf.Problem{Patches: patches, Gluings: gluings})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("obstruction:", sol.ResidualError)
//	y, _ := learner.Predict("left", sample)
package sheaf

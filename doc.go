// Package sheaflearn solves collections of local least-squares problems
// ("patches") tied together by pairwise equality constraints ("gluings")
// in a single closed-form step.
//
// 🚀 What is sheaflearn?
//
//	A library for local-to-global linear learning on top of cyclic-group
//	character features:
//		• Character transform: the n×n character table of Z/nZ (a DFT-like
//		  basis), with projection, decomposition and reconstruction
//		• Feature rows: flat [position, character] feature vectors built
//		  from sequence-valued samples
//		• Sheaf assembly: per-patch design matrices plus cross-patch
//		  consistency rows, stacked into one global system
//		• Global solve: ridge-regularized normal equations via Cholesky,
//		  with an SVD least-squares path for the character-weight
//		  sub-problem
//		• Obstruction: the residual ‖Aw−b‖² of the combined system — zero
//		  means the local fits and the gluing constraints are exactly,
//		  simultaneously satisfiable
//
// ✨ Why choose sheaflearn?
//
//   - Closed form – one factorization per fit, no iterative training loop
//   - Interpretable – the residual quantifies the local/global trade-off
//   - Deterministic – identical inputs always produce identical solutions
//   - Small API – build a Problem, Fit it, Predict per patch
//
// Everything is organized under four subpackages:
//
//	character/ — irreducible characters of Z/nZ: table, rotate, project,
//	             decompose, reconstruct, character-weight learning
//	feature/   — flat feature rows over [position, character]
//	solve/     — dense solver: ridge Cholesky & rank-revealing SVD
//	sheaf/     — patches, gluings, problem assembly, Learner (Fit/Predict)
//
// Quick sketch:
//
//	patch "left"          patch "right"
//	  samples → A₁w₁≈b₁     samples → A₂w₂≈b₂
//	        └──── glue: f₁·w₁ − f₂·w₂ = 0 ────┘
//
// The stacked system is solved once; the leftover squared error is the
// obstruction to gluing all the local solutions into a global one.
//
//	go get github.com/katalvlaran/sheaflearn
package sheaflearn

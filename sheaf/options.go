// SPDX-License-Identifier: MIT

// Package sheaf: functional configuration for the Learner. This file
// defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, not runtime input).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: option fields are unexported; public APIs
//     consume ...Option.
package sheaf

import "io"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultRidge is the fixed diagonal addition λ to the normal matrix.
	// It guarantees positive-definiteness even for rank-deficient systems
	// (more unknowns than rows is the common case). WithRidge(0) disables
	// regularization and makes solve.ErrSingularSystem reachable.
	DefaultRidge = 1e-8

	// DefaultTolerance is the flooring threshold for the residual: squared
	// residuals below it are reported as exactly 0 and flip Converged.
	DefaultTolerance = 1e-12
)

// options carries the Learner configuration assembled from Option values.
type options struct {
	ridge     float64   // λ in (AᴴA + λI)w = Aᴴb
	tolerance float64   // residual flooring threshold
	trace     io.Writer // optional fit trace destination, nil = silent
}

// Option represents a functional option for configuring a Learner.
type Option func(*options)

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		ridge:     DefaultRidge,
		tolerance: DefaultTolerance,
		trace:     nil,
	}
}

// WithRidge overrides the ridge coefficient λ. Zero is legal and disables
// regularization (the solve may then fail with solve.ErrSingularSystem on
// degenerate systems). Negative values panic with ErrNegativeRidge.
func WithRidge(lambda float64) Option {
	return func(o *options) {
		if lambda < 0 {
			panic(ErrNegativeRidge.Error())
		}
		o.ridge = lambda
	}
}

// WithTolerance overrides the residual flooring threshold. Zero disables
// flooring entirely (Converged then requires an exactly zero residual).
// Negative values panic with ErrNegativeTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 {
			panic(ErrNegativeTolerance.Error())
		}
		o.tolerance = tol
	}
}

// WithTrace directs a plain-text fit trace (patch, gluing and system
// shapes, residual) to w. Useful for demos and debugging; the default is
// silence. A nil writer panics with ErrNilTraceWriter.
func WithTrace(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			panic(ErrNilTraceWriter.Error())
		}
		o.trace = w
	}
}

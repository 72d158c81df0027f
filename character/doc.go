// Package character implements the irreducible characters of the cyclic
// group Z/nZ and the projection calculus built on them.
//
// Overview:
//
//   - The cyclic group of order n has exactly n irreducible characters
//     χ_j(k) = ω^(j·k), ω = exp(2πi/n). Arranged as an n×n table they form
//     the DFT matrix, so decomposing a sequence over the characters is a
//     discrete Fourier analysis of its behavior under cyclic shifts.
//   - The group acts on sequence-valued data by rotating rows; Project
//     averages that action against one character and extracts the component
//     of the sequence living in that character's subspace.
//   - Decompose produces all projections at once; by Maschke's theorem they
//     sum back to the original sequence, which Reconstruct exploits with
//     arbitrary coefficient reweighting.
//   - LearnWeights fits the reweighting coefficients to data: it stacks each
//     sample's decomposition into an overdetermined linear system against
//     the flattened targets and solves it with a rank-revealing SVD
//     (solve.LeastSquares), not the normal equations — the per-call systems
//     are small and can be badly conditioned for few samples.
//
// Key identities (all verified by the package tests):
//
//   - Unitarity: table · conj(table)ᵀ = n·I.
//   - Completeness: Reconstruct(ones, Decompose(V)) = V for len(V) = n.
//   - Group action: Rotate(V, 0) = V and
//     Rotate(Rotate(V, k₁), k₂) = Rotate(V, (k₁+k₂) mod L).
//
// Errors (sentinel):
//
//   - ErrNonPositiveOrder  — New called with n ≤ 0.
//   - ErrIndexOutOfRange   — character index outside [0, n).
//   - ErrEmptyProjections  — Reconstruct called with no projections.
//   - ErrNoSamples         — LearnWeights called with no samples.
//   - ErrLengthMismatch    — sample and target counts differ.
//   - ErrShapeMismatch     — samples or targets with inconsistent shapes.
//
// A Group is immutable after construction and safe for concurrent readers.
package character

// Package feature builds the flat feature rows that connect raw sequence
// samples to the sheaf assembly.
//
// A Builder for an (nPositions, nCharacters) patch shape decomposes an
// nPositions×1 sample over the cyclic-group characters of order nPositions
// and lays the projections out row-major over [position, character]:
//
//	row[p·nCharacters + j] = Proj_j(V)[p, 0]
//
// This layout is the contract the assembler and the solution accessor both
// depend on: the learned weight matrix for a patch is the same flat vector
// reshaped to nPositions×nCharacters, so a prediction is a plain dot
// product between a feature row and the flattened weights. Character
// indices beyond the decomposition length (sequences shorter than the
// group order) stay zero.
//
// Samples wider than one column are rejected with ErrBadShape: the feature
// and target extraction reads column 0 only, and silently ignoring extra
// columns would corrupt downstream residuals. Scalar embeddings are a
// documented restriction of the current model, not an oversight.
package feature

// Package embed recovers low-dimensional Euclidean coordinates from a
// precomputed dissimilarity matrix via classical (Torgerson) multi-
// dimensional scaling, delegated to gonum's stat/mds.
//
// The embedding is the standard visualization bridge for non-Euclidean
// metrics: run MDS on a geodesic or Fermat distance matrix, then scatter
// the resulting coordinates to see the metric's geometry.
//
// Contract:
//
//   - Input must be square, exactly symmetric, zero-diagonal and finite:
//     +Inf ("no path") entries are not embeddable — resolve disconnection
//     before embedding.
//   - Output is n×dim: the leading dim coordinate columns of the scaling.
//     When the scaling admits fewer positive eigenvalues than dim, the
//     data cannot fill the requested dimension and ErrDegenerate is
//     returned rather than zero-padded coordinates.
//
// Errors (sentinel):
//
//   - ErrNilMatrix     if the matrix is nil.
//   - ErrNotSquare     if the matrix is not square.
//   - ErrAsymmetric    if the matrix is not exactly symmetric.
//   - ErrBadDiagonal   if any diagonal entry is nonzero.
//   - ErrInfiniteEntry if any entry is +Inf, -Inf or NaN.
//   - ErrBadTargetDim  if dim < 1 or dim > n.
//   - ErrDegenerate    if fewer than dim positive eigenvalues exist.
package embed

// Package cloud defines the point-cloud type shared by every metric and
// persistence component, plus the pairwise Euclidean distance matrix.
//
// A PointCloud is an ordered sequence of points in Euclidean space of a
// fixed dimension d. It is immutable by convention: constructors copy their
// input, Append returns a fresh cloud, and no method mutates the receiver.
// Point order is significant — every distance matrix produced downstream
// indexes rows and columns by point position.
//
// EuclideanMatrix computes the full n×n pairwise distance matrix as a
// *mat.SymDense. By construction the result is symmetric with a zero
// diagonal, and every off-diagonal entry is strictly positive for distinct
// points.
//
// Complexity:
//
//   - EuclideanMatrix: O(n²·d) time, O(n²) space.
//   - Bounds:          O(n·d) time, O(d) space.
//
// Errors (sentinel):
//
//   - ErrNilCloud          if a nil *PointCloud is passed to an operation.
//   - ErrTooFewPoints      if a cloud with zero points is constructed or consumed.
//   - ErrBadDimension      if the point dimension is < 1.
//   - ErrDimensionMismatch if points of differing dimensions are mixed.
package cloud

// errors.go — sentinel errors for the geodesic package.

package geodesic

import "errors"

// ErrNilGraph indicates that a nil graph was passed to AllPairs.
var ErrNilGraph = errors.New("geodesic: graph is nil")

// ErrBadNodeIDs indicates that the graph's node IDs are not exactly the
// contiguous range 0..n−1 expected of point-indexed graphs.
var ErrBadNodeIDs = errors.New("geodesic: node IDs must be 0..n-1")

// ErrNegativeWeight indicates that a negative edge weight or matrix entry
// was detected; shortest-path distances require non-negative weights.
var ErrNegativeWeight = errors.New("geodesic: negative weight encountered")

// ErrNilMatrix indicates that a nil *mat.Dense was passed to DenseAllPairs.
var ErrNilMatrix = errors.New("geodesic: matrix is nil")

// ErrNotSquare indicates a non-square matrix.
var ErrNotSquare = errors.New("geodesic: matrix must be square")

// ErrBadDiagonal indicates a nonzero diagonal entry; self-distance must be 0
// before closure.
var ErrBadDiagonal = errors.New("geodesic: diagonal must be zero")

// errors.go — sentinel errors for the persistence package.

package persistence

import "errors"

// ErrNilMatrix indicates that a nil distance matrix was passed.
var ErrNilMatrix = errors.New("persistence: distance matrix is nil")

// ErrNilCloud indicates that a nil *cloud.PointCloud was passed.
var ErrNilCloud = errors.New("persistence: point cloud is nil")

// ErrNotSquare indicates a non-square distance matrix.
var ErrNotSquare = errors.New("persistence: distance matrix must be square")

// ErrAsymmetric indicates a distance matrix with dist[i,j] != dist[j,i];
// the Vietoris–Rips filtration is defined over symmetric dissimilarities.
var ErrAsymmetric = errors.New("persistence: distance matrix must be symmetric")

// ErrBadDiagonal indicates a nonzero diagonal entry in a precomputed
// distance matrix; self-distance must be exactly 0.
var ErrBadDiagonal = errors.New("persistence: diagonal must be zero")

// ErrBadDistance indicates a negative or NaN off-diagonal entry. +Inf is
// legal ("never joined"); negative and NaN are not distances.
var ErrBadDistance = errors.New("persistence: invalid distance entry")

// ErrBadMaxDimension indicates a requested homology dimension outside the
// supported range {0, 1}.
var ErrBadMaxDimension = errors.New("persistence: max homology dimension out of range")

// ErrBadThreshold indicates a negative filtration cap.
var ErrBadThreshold = errors.New("persistence: threshold must be non-negative")

// ErrBadMinPersistence indicates a negative persistence cut.
var ErrBadMinPersistence = errors.New("persistence: min persistence must be non-negative")

// errors.go — sentinel errors for the knn package.

package knn

import "errors"

// ErrNilCloud indicates that a nil *cloud.PointCloud was passed.
var ErrNilCloud = errors.New("knn: point cloud is nil")

// ErrTooFewPoints indicates that the cloud has fewer than 2 points, so no
// edges can exist.
var ErrTooFewPoints = errors.New("knn: at least 2 points are required")

// ErrBadNeighborCount indicates a neighbor count outside [1, n−1].
// Usage: if errors.Is(err, knn.ErrBadNeighborCount) { /* adjust k */ }.
var ErrBadNeighborCount = errors.New("knn: neighbor count out of range")

// errors.go — sentinel errors for the fermat package.

package fermat

import "errors"

// ErrNilCloud indicates that a nil *cloud.PointCloud was passed.
var ErrNilCloud = errors.New("fermat: point cloud is nil")

// ErrInfeasibleExponent indicates a deformation exponent outside the
// feasible domain p ≥ 1.
// Usage: if errors.Is(err, fermat.ErrInfeasibleExponent) { /* raise p */ }.
var ErrInfeasibleExponent = errors.New("fermat: deformation exponent must be at least 1")

// ErrBadNeighborCount indicates a restricted neighbor count outside [1, n−1].
var ErrBadNeighborCount = errors.New("fermat: neighbor count out of range")

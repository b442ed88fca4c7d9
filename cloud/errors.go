// errors.go — sentinel errors for the cloud package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).

package cloud

import "errors"

// ErrNilCloud indicates that a nil *PointCloud was passed to an operation
// that requires a constructed cloud.
// Usage: if errors.Is(err, cloud.ErrNilCloud) { /* construct the cloud first */ }.
var ErrNilCloud = errors.New("cloud: point cloud is nil")

// ErrTooFewPoints indicates that an operation received a cloud with fewer
// points than it can meaningfully process (n < 1 for construction and
// distance matrices).
var ErrTooFewPoints = errors.New("cloud: too few points")

// ErrBadDimension indicates that a point dimension outside the valid domain
// (d < 1) was requested or encountered during construction.
var ErrBadDimension = errors.New("cloud: dimension must be at least 1")

// ErrDimensionMismatch indicates that points of differing dimensions were
// combined in a single cloud, or that an appended point does not match the
// receiver's dimension.
var ErrDimensionMismatch = errors.New("cloud: point dimension mismatch")

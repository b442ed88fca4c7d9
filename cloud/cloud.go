// cloud.go — the PointCloud type: construction, accessors, Append, Bounds.
//
// Contract:
//   - New copies its input; callers may reuse or mutate their slices afterwards.
//   - All points share one dimension d ≥ 1 (ErrDimensionMismatch / ErrBadDimension).
//   - n ≥ 1 (ErrTooFewPoints).
//   - At returns a read-only view; callers must not write through it.

package cloud

import "fmt"

// PointCloud is an ordered, fixed-dimension sequence of points in Euclidean
// space. The zero value is not usable; construct clouds with New.
type PointCloud struct {
	pts [][]float64 // row-major points, each of length dim
	dim int         // shared point dimension, ≥ 1
}

// New builds a PointCloud from the given points, copying every coordinate.
//
// Validation (in order):
//  1. len(points) ≥ 1              (ErrTooFewPoints)
//  2. len(points[0]) ≥ 1           (ErrBadDimension)
//  3. uniform dimension across all (ErrDimensionMismatch)
//
// Complexity: O(n·d) time and space.
func New(points [][]float64) (*PointCloud, error) {
	// 1) At least one point is required; an empty cloud has no geometry.
	if len(points) == 0 {
		return nil, fmt.Errorf("cloud.New: n=0: %w", ErrTooFewPoints)
	}

	// 2) The first point fixes the dimension for the whole cloud.
	dim := len(points[0])
	if dim < 1 {
		return nil, fmt.Errorf("cloud.New: d=%d: %w", dim, ErrBadDimension)
	}

	// 3) Copy rows, verifying the shared dimension as we go.
	pts := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("cloud.New: point %d has d=%d, want %d: %w",
				i, len(p), dim, ErrDimensionMismatch)
		}
		row := make([]float64, dim)
		copy(row, p)
		pts[i] = row
	}

	return &PointCloud{pts: pts, dim: dim}, nil
}

// Len returns the number of points n.
func (pc *PointCloud) Len() int { return len(pc.pts) }

// Dim returns the shared point dimension d.
func (pc *PointCloud) Dim() int { return pc.dim }

// At returns the i-th point as a view into the cloud's storage.
// The returned slice must be treated as read-only; panics if i is out of range.
func (pc *PointCloud) At(i int) []float64 { return pc.pts[i] }

// Append returns a new PointCloud consisting of the receiver's points
// followed by the given extra points, leaving the receiver untouched.
// Every extra point must match the receiver's dimension
// (ErrDimensionMismatch). Appending zero points returns a copy.
//
// Complexity: O((n+m)·d) time and space for m appended points.
func (pc *PointCloud) Append(points ...[]float64) (*PointCloud, error) {
	if pc == nil {
		return nil, fmt.Errorf("cloud.Append: %w", ErrNilCloud)
	}

	// 1) Validate the extra points before any allocation is visible.
	for i, p := range points {
		if len(p) != pc.dim {
			return nil, fmt.Errorf("cloud.Append: point %d has d=%d, want %d: %w",
				i, len(p), pc.dim, ErrDimensionMismatch)
		}
	}

	// 2) Copy existing rows plus the new ones into fresh storage.
	pts := make([][]float64, 0, len(pc.pts)+len(points))
	for _, p := range pc.pts {
		row := make([]float64, pc.dim)
		copy(row, p)
		pts = append(pts, row)
	}
	for _, p := range points {
		row := make([]float64, pc.dim)
		copy(row, p)
		pts = append(pts, row)
	}

	return &PointCloud{pts: pts, dim: pc.dim}, nil
}

// Bounds returns the axis-aligned bounding box of the cloud as two
// d-length slices (per-axis minima and maxima).
//
// Complexity: O(n·d) time, O(d) space.
func (pc *PointCloud) Bounds() (min, max []float64) {
	min = make([]float64, pc.dim)
	max = make([]float64, pc.dim)
	copy(min, pc.pts[0])
	copy(max, pc.pts[0])

	var i, a int
	for i = 1; i < len(pc.pts); i++ {
		for a = 0; a < pc.dim; a++ {
			v := pc.pts[i][a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}

	return min, max
}

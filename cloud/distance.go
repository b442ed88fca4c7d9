// distance.go — pairwise Euclidean distance matrix over a PointCloud.
//
// Contract:
//   - Output is an n×n *mat.SymDense: symmetric by storage, zero diagonal.
//   - Off-diagonal entries are strictly positive for distinct points.
//   - No +Inf/NaN can appear: inputs are finite coordinates.

package cloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EuclideanMatrix computes the full pairwise Euclidean distance matrix of pc.
// Entry (i,j) is the L2 distance between point i and point j; the diagonal
// is zero and the matrix is symmetric by construction.
//
// Complexity: O(n²·d) time, O(n²) space.
func EuclideanMatrix(pc *PointCloud) (*mat.SymDense, error) {
	// 1) Validate input.
	if pc == nil {
		return nil, fmt.Errorf("cloud.EuclideanMatrix: %w", ErrNilCloud)
	}
	n := pc.Len()
	if n < 1 {
		return nil, fmt.Errorf("cloud.EuclideanMatrix: n=%d: %w", n, ErrTooFewPoints)
	}

	// 2) Fill the upper triangle; SymDense mirrors automatically.
	d := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, euclidean(pc.pts[i], pc.pts[j]))
		}
	}

	return d, nil
}

// euclidean returns the L2 distance between two points of equal dimension.
func euclidean(a, b []float64) float64 {
	var sum, diff float64
	for i := range a {
		diff = a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

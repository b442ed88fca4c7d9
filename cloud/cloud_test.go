// Package cloud_test validates PointCloud construction, immutability and the
// pairwise Euclidean distance matrix invariants.
package cloud_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvik/ripsaw/cloud"
)

// TestNew_Validation exercises the fail-fast construction checks in order.
func TestNew_Validation(t *testing.T) {
	// n = 0 is rejected.
	_, err := cloud.New(nil)
	assert.ErrorIs(t, err, cloud.ErrTooFewPoints)

	// d = 0 is rejected.
	_, err = cloud.New([][]float64{{}})
	assert.ErrorIs(t, err, cloud.ErrBadDimension)

	// Mixed dimensions are rejected.
	_, err = cloud.New([][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, cloud.ErrDimensionMismatch)
}

// TestNew_CopiesInput verifies that mutating the caller's slices after
// construction does not leak into the cloud.
func TestNew_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 0, 0}, {0, 1, 0}}
	pc, err := cloud.New(src)
	require.NoError(t, err)

	src[0][0] = 99 // mutate the caller's storage

	assert.Equal(t, 1.0, pc.At(0)[0], "cloud must own its coordinates")
	assert.Equal(t, 2, pc.Len())
	assert.Equal(t, 3, pc.Dim())
}

// TestAppend_NewCloud verifies Append returns a fresh cloud and validates
// the appended dimensions.
func TestAppend_NewCloud(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}})
	require.NoError(t, err)

	grown, err := pc.Append([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, grown.Len())
	assert.Equal(t, 2, pc.Len(), "receiver must be untouched")

	_, err = pc.Append([]float64{1, 2, 3})
	assert.ErrorIs(t, err, cloud.ErrDimensionMismatch)
}

// TestBounds covers the axis-aligned bounding box on a hand-built cloud.
func TestBounds(t *testing.T) {
	pc, err := cloud.New([][]float64{{-1, 5, 0}, {2, -3, 1}, {0, 0, 7}})
	require.NoError(t, err)

	min, max := pc.Bounds()
	assert.Equal(t, []float64{-1, -3, 0}, min)
	assert.Equal(t, []float64{2, 5, 7}, max)
}

// TestEuclideanMatrix_KnownValues checks exact distances on a unit square.
func TestEuclideanMatrix_KnownValues(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	d, err := cloud.EuclideanMatrix(pc)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, d.At(0, 1), 1e-15)
	assert.InDelta(t, math.Sqrt2, d.At(0, 2), 1e-15)
	assert.InDelta(t, 1.0, d.At(0, 3), 1e-15)
}

// TestEuclideanMatrix_Invariants checks symmetry, zero diagonal and strict
// positivity off the diagonal for distinct points.
func TestEuclideanMatrix_Invariants(t *testing.T) {
	pts := [][]float64{{0, 0, 0}, {1, 2, 3}, {-1, 0.5, 2}, {4, 4, 4}, {0.1, 0.2, 0.3}}
	pc, err := cloud.New(pts)
	require.NoError(t, err)

	d, err := cloud.EuclideanMatrix(pc)
	require.NoError(t, err)

	n := pc.Len()
	for i := 0; i < n; i++ {
		assert.Zero(t, d.At(i, i), "diagonal must be zero")
		for j := 0; j < n; j++ {
			assert.Equal(t, d.At(i, j), d.At(j, i), "matrix must be symmetric")
			if i != j {
				assert.Greater(t, d.At(i, j), 0.0, "distinct points must be strictly apart")
			}
		}
	}
}

// TestEuclideanMatrix_NilCloud covers the nil-receiver sentinel.
func TestEuclideanMatrix_NilCloud(t *testing.T) {
	_, err := cloud.EuclideanMatrix(nil)
	assert.ErrorIs(t, err, cloud.ErrNilCloud)
}

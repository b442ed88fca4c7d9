// Package geodesic_test validates both all-pairs shortest-path forms:
// delegation over sparse graphs and the dense in-place metric closure.
package geodesic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/halvik/ripsaw/cloud"
	"github.com/halvik/ripsaw/geodesic"
	"github.com/halvik/ripsaw/knn"
)

// TestAllPairs_LineGraph verifies path-length accumulation on the k=1
// nearest-neighbor graph of a tie-free line: 0—1—2—3 with gaps 1, 1.5, 2.
func TestAllPairs_LineGraph(t *testing.T) {
	pc, err := cloud.New([][]float64{{0}, {1}, {2.5}, {4.5}})
	require.NoError(t, err)
	g, err := knn.Build(pc, 1)
	require.NoError(t, err)

	d, err := geodesic.AllPairs(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, d.At(0, 1), 1e-12)
	assert.InDelta(t, 2.5, d.At(0, 2), 1e-12, "0→2 must chain through 1")
	assert.InDelta(t, 4.5, d.At(0, 3), 1e-12, "0→3 must chain through 1 and 2")
	assert.Zero(t, d.At(2, 2))
	assert.Equal(t, d.At(3, 0), d.At(0, 3), "output must be symmetric")
}

// TestAllPairs_Disconnected verifies the +Inf sentinel between components:
// two distant pairs with k=1 split into two components.
func TestAllPairs_Disconnected(t *testing.T) {
	pc, err := cloud.New([][]float64{{0}, {1}, {100}, {101}})
	require.NoError(t, err)
	g, err := knn.Build(pc, 1)
	require.NoError(t, err)

	d, err := geodesic.AllPairs(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, d.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, d.At(2, 3), 1e-12)
	assert.True(t, math.IsInf(d.At(0, 2), 1), "cross-component distance must be +Inf")
	assert.True(t, math.IsInf(d.At(1, 3), 1))
}

func TestAllPairs_NilGraph(t *testing.T) {
	_, err := geodesic.AllPairs(nil)
	assert.ErrorIs(t, err, geodesic.ErrNilGraph)
}

// TestDenseAllPairs_Closure verifies that an indirect two-hop path replaces
// a longer direct entry.
func TestDenseAllPairs_Closure(t *testing.T) {
	d := mat.NewDense(3, 3, []float64{
		0, 1, 10,
		1, 0, 2,
		10, 2, 0,
	})
	require.NoError(t, geodesic.DenseAllPairs(d))

	assert.InDelta(t, 3.0, d.At(0, 2), 1e-12, "0→1→2 beats the direct edge")
	assert.InDelta(t, 3.0, d.At(2, 0), 1e-12)
	assert.InDelta(t, 1.0, d.At(0, 1), 1e-12, "shorter entries are untouched")
}

// TestDenseAllPairs_InfStaysInf verifies disconnected blocks keep the
// sentinel after closure.
func TestDenseAllPairs_InfStaysInf(t *testing.T) {
	inf := math.Inf(1)
	d := mat.NewDense(4, 4, []float64{
		0, 1, inf, inf,
		1, 0, inf, inf,
		inf, inf, 0, 2,
		inf, inf, 2, 0,
	})
	require.NoError(t, geodesic.DenseAllPairs(d))

	assert.True(t, math.IsInf(d.At(0, 2), 1))
	assert.True(t, math.IsInf(d.At(1, 3), 1))
	assert.InDelta(t, 1.0, d.At(0, 1), 1e-12)
}

// TestDenseAllPairs_TriangleInequality verifies the closure output is a
// metric on a random-ish hand matrix.
func TestDenseAllPairs_TriangleInequality(t *testing.T) {
	d := mat.NewDense(4, 4, []float64{
		0, 5, 9, 4,
		5, 0, 1, 7,
		9, 1, 0, 2,
		4, 7, 2, 0,
	})
	require.NoError(t, geodesic.DenseAllPairs(d))

	n, _ := d.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				assert.LessOrEqual(t, d.At(i, j), d.At(i, k)+d.At(k, j)+1e-12,
					"triangle inequality must hold for (%d,%d,%d)", i, j, k)
			}
		}
	}
}

func TestDenseAllPairs_Validation(t *testing.T) {
	assert.ErrorIs(t, geodesic.DenseAllPairs(nil), geodesic.ErrNilMatrix)

	rect := mat.NewDense(2, 3, nil)
	assert.ErrorIs(t, geodesic.DenseAllPairs(rect), geodesic.ErrNotSquare)

	badDiag := mat.NewDense(2, 2, []float64{1, 2, 2, 0})
	assert.ErrorIs(t, geodesic.DenseAllPairs(badDiag), geodesic.ErrBadDiagonal)

	neg := mat.NewDense(2, 2, []float64{0, -1, -1, 0})
	assert.ErrorIs(t, geodesic.DenseAllPairs(neg), geodesic.ErrNegativeWeight)
}

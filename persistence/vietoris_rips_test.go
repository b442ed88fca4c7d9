// Package persistence_test validates Vietoris–Rips persistence on hand-built
// complexes with known diagrams, input validation, and both metric modes.
package persistence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/halvik/ripsaw/cloud"
	"github.com/halvik/ripsaw/persistence"
)

func TestVietorisRips_Validation(t *testing.T) {
	_, err := persistence.VietorisRips(nil)
	assert.ErrorIs(t, err, persistence.ErrNilMatrix)

	d := mat.NewSymDense(2, []float64{0, 1, 1, 0})
	_, err = persistence.VietorisRips(d, persistence.WithMaxDimension(2))
	assert.ErrorIs(t, err, persistence.ErrBadMaxDimension)
	_, err = persistence.VietorisRips(d, persistence.WithMaxDimension(-1))
	assert.ErrorIs(t, err, persistence.ErrBadMaxDimension)
	_, err = persistence.VietorisRips(d, persistence.WithThreshold(-1))
	assert.ErrorIs(t, err, persistence.ErrBadThreshold)
	_, err = persistence.VietorisRips(d, persistence.WithMinPersistence(-0.1))
	assert.ErrorIs(t, err, persistence.ErrBadMinPersistence)

	rect := mat.NewDense(2, 3, nil)
	_, err = persistence.VietorisRips(rect)
	assert.ErrorIs(t, err, persistence.ErrNotSquare)

	asym := mat.NewDense(2, 2, []float64{0, 1, 2, 0})
	_, err = persistence.VietorisRips(asym)
	assert.ErrorIs(t, err, persistence.ErrAsymmetric)

	badDiag := mat.NewSymDense(2, []float64{1, 1, 1, 0})
	_, err = persistence.VietorisRips(badDiag)
	assert.ErrorIs(t, err, persistence.ErrBadDiagonal)

	neg := mat.NewSymDense(2, []float64{0, -1, -1, 0})
	_, err = persistence.VietorisRips(neg)
	assert.ErrorIs(t, err, persistence.ErrBadDistance)

	_, err = persistence.FromCloud(nil)
	assert.ErrorIs(t, err, persistence.ErrNilCloud)
}

// TestVietorisRips_Path: three points on a line (gaps 1 and 2, span 3).
// H0: deaths at 1 and 2 plus one essential class; H1: empty (the triangle
// kills its own cycle instantly).
func TestVietorisRips_Path(t *testing.T) {
	d := mat.NewSymDense(3, []float64{
		0, 1, 3,
		1, 0, 2,
		3, 2, 0,
	})
	dgm, err := persistence.VietorisRips(d)
	require.NoError(t, err)

	h0 := dgm.ByDim(0)
	require.Len(t, h0, 3)
	assert.Equal(t, persistence.Pair{Birth: 0, Death: 1, Dim: 0}, h0[0])
	assert.Equal(t, persistence.Pair{Birth: 0, Death: 2, Dim: 0}, h0[1])
	assert.True(t, h0[2].Essential(), "one component must survive")

	assert.Empty(t, dgm.ByDim(1))
}

// TestVietorisRips_Square: the unit square's four sides close a loop at 1
// that the diagonal triangles fill at √2.
func TestVietorisRips_Square(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	dgm, err := persistence.FromCloud(pc)
	require.NoError(t, err)

	h1 := dgm.ByDim(1)
	require.Len(t, h1, 1, "the square carries exactly one persistent loop")
	assert.InDelta(t, 1.0, h1[0].Birth, 1e-12)
	assert.InDelta(t, math.Sqrt2, h1[0].Death, 1e-12)

	h0 := dgm.ByDim(0)
	require.Len(t, h0, 4)
	for _, p := range h0[:3] {
		assert.InDelta(t, 1.0, p.Death, 1e-12, "sides merge all components at 1")
	}
	assert.True(t, h0[3].Essential())
}

// TestVietorisRips_Circle: n points on the unit circle yield one dominant
// loop born at the sample gap and dead at √3 (inscribed equilateral
// triangle), with no other 1-classes.
func TestVietorisRips_Circle(t *testing.T) {
	const n = 24
	pts := make([][]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = []float64{math.Cos(a), math.Sin(a)}
	}
	pc, err := cloud.New(pts)
	require.NoError(t, err)

	dgm, err := persistence.FromCloud(pc)
	require.NoError(t, err)

	h1 := dgm.ByDim(1)
	require.Len(t, h1, 1)
	gap := 2 * math.Sin(math.Pi/n)
	assert.InDelta(t, gap, h1[0].Birth, 1e-9)
	assert.InDelta(t, math.Sqrt(3), h1[0].Death, 1e-9)

	h0 := dgm.ByDim(0)
	assert.Len(t, h0, n, "n-1 merges plus one essential component")
}

// TestVietorisRips_MaxDimensionZero skips the triangle stage entirely.
func TestVietorisRips_MaxDimensionZero(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	dgm, err := persistence.FromCloud(pc, persistence.WithMaxDimension(0))
	require.NoError(t, err)

	assert.Empty(t, dgm.ByDim(1))
	assert.Len(t, dgm.ByDim(0), 4)
}

// TestVietorisRips_Threshold: capping the filtration below the loop's death
// leaves it essential.
func TestVietorisRips_Threshold(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	dgm, err := persistence.FromCloud(pc, persistence.WithThreshold(1.2))
	require.NoError(t, err)

	h1 := dgm.ByDim(1)
	require.Len(t, h1, 1)
	assert.InDelta(t, 1.0, h1[0].Birth, 1e-12)
	assert.True(t, h1[0].Essential(), "the loop outlives the capped filtration")
}

// TestVietorisRips_InfEntries: a disconnected precomputed matrix (the
// Fermat/geodesic no-path sentinel) yields one essential component per
// block and never errors.
func TestVietorisRips_InfEntries(t *testing.T) {
	inf := math.Inf(1)
	d := mat.NewSymDense(4, []float64{
		0, 1, inf, inf,
		1, 0, inf, inf,
		inf, inf, 0, 2,
		inf, inf, 2, 0,
	})
	dgm, err := persistence.VietorisRips(d)
	require.NoError(t, err)

	h0 := dgm.ByDim(0)
	essentials := 0
	for _, p := range h0 {
		if p.Essential() {
			essentials++
		}
	}
	assert.Equal(t, 2, essentials, "one essential class per component")
}

// TestVietorisRips_MinPersistence drops the short-lived loop of a slightly
// bent square while keeping component structure intact.
func TestVietorisRips_MinPersistence(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	dgm, err := persistence.FromCloud(pc, persistence.WithMinPersistence(1.0))
	require.NoError(t, err)

	assert.Empty(t, dgm.ByDim(1), "loop persistence √2−1 is below the cut")

	h0 := dgm.ByDim(0)
	require.Len(t, h0, 1, "finite H0 deaths at 1 are also below the cut")
	assert.True(t, h0[0].Essential())
}

// TestFromCloud_MatchesPrecomputed: euclidean mode must agree with the
// precomputed mode fed the Euclidean matrix.
func TestFromCloud_MatchesPrecomputed(t *testing.T) {
	pc, err := cloud.New([][]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 3}})
	require.NoError(t, err)

	fromCloud, err := persistence.FromCloud(pc)
	require.NoError(t, err)

	e, err := cloud.EuclideanMatrix(pc)
	require.NoError(t, err)
	precomputed, err := persistence.VietorisRips(e)
	require.NoError(t, err)

	assert.Equal(t, precomputed, fromCloud)
}

// TestDiagram_MostPersistent covers selection across finite and essential
// classes.
func TestDiagram_MostPersistent(t *testing.T) {
	dgm := persistence.Diagram{
		{Birth: 0, Death: 1, Dim: 0},
		{Birth: 0, Death: math.Inf(1), Dim: 0},
		{Birth: 1, Death: 2, Dim: 1},
		{Birth: 0.5, Death: 3, Dim: 1},
	}

	best, ok := dgm.MostPersistent(0)
	require.True(t, ok)
	assert.True(t, best.Essential())

	best, ok = dgm.MostPersistent(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, best.Birth)

	_, ok = dgm.MostPersistent(2)
	assert.False(t, ok)
}

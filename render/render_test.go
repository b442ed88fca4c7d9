package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/halvik/ripsaw/cloud"
	"github.com/halvik/ripsaw/persistence"
	"github.com/halvik/ripsaw/render"
)

// requireImage asserts the file exists and is non-empty.
func requireImage(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveScatter(t *testing.T) {
	pc, err := cloud.New([][]float64{
		{0, 0, 0}, {1, 0, 1}, {0, 1, 2}, {1, 1, 3},
	})
	require.NoError(t, err)

	dir := t.TempDir()

	path := filepath.Join(dir, "cloud.png")
	require.NoError(t, render.SaveScatter(pc, path))
	requireImage(t, path)

	// Explicit projection plane.
	path = filepath.Join(dir, "cloud_xz.png")
	require.NoError(t, render.SaveScatter(pc, path, 0, 2))
	requireImage(t, path)

	// Validation.
	assert.ErrorIs(t, render.SaveScatter(nil, path), render.ErrNilCloud)
	assert.ErrorIs(t, render.SaveScatter(pc, path, 0), render.ErrBadAxis)
	assert.ErrorIs(t, render.SaveScatter(pc, path, 0, 3), render.ErrBadAxis)
}

func TestSaveCoordinates(t *testing.T) {
	coords := mat.NewDense(3, 2, []float64{0, 0, 1, 0, 0, 1})
	path := filepath.Join(t.TempDir(), "coords.png")
	require.NoError(t, render.SaveCoordinates(coords, path))
	requireImage(t, path)

	assert.ErrorIs(t, render.SaveCoordinates(nil, path), render.ErrNilMatrix)
}

func TestSaveHeatMap(t *testing.T) {
	// +Inf entry must clamp, not blow up the palette scale.
	m := mat.NewDense(3, 3, []float64{
		0, 1, math.Inf(1),
		1, 0, 2,
		math.Inf(1), 2, 0,
	})

	path := filepath.Join(t.TempDir(), "heat.png")
	require.NoError(t, render.SaveHeatMap(m, path))
	requireImage(t, path)

	assert.ErrorIs(t, render.SaveHeatMap(nil, path), render.ErrNilMatrix)
}

func TestSaveDiagram(t *testing.T) {
	d := persistence.Diagram{
		{Birth: 0, Death: 0.4, Dim: 0},
		{Birth: 0, Death: 0.7, Dim: 0},
		{Birth: 0, Death: math.Inf(1), Dim: 0},
		{Birth: 0.5, Death: 1.7, Dim: 1},
	}

	path := filepath.Join(t.TempDir(), "diagram.png")
	require.NoError(t, render.SaveDiagram(d, path))
	requireImage(t, path)

	assert.ErrorIs(t, render.SaveDiagram(nil, path), render.ErrEmptyDiagram)
}

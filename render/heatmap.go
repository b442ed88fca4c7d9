package render

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// distanceGrid adapts a distance matrix to plotter.GridXYZ. Grid row r
// maps to matrix row r, so row 0 sits at the bottom of the image in the
// usual plot orientation. Non-finite entries are clamped to clampMax.
type distanceGrid struct {
	m        mat.Matrix
	rows     int
	cols     int
	clampMax float64
}

func (g distanceGrid) Dims() (c, r int) { return g.cols, g.rows }
func (g distanceGrid) X(c int) float64  { return float64(c) }
func (g distanceGrid) Y(r int) float64  { return float64(r) }

func (g distanceGrid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return g.clampMax
	}

	return v
}

// SaveHeatMap draws an n×m matrix as a heat map and writes it to path.
// +Inf ("no path") and NaN entries are clamped to the largest finite
// entry so the palette scale stays meaningful for the rest of the matrix.
func SaveHeatMap(m mat.Matrix, path string) error {
	// 1) Validate.
	if m == nil {
		return ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return ErrNilMatrix
	}

	// 2) Find the finite maximum for clamping.
	clamp := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); !math.IsInf(v, 0) && !math.IsNaN(v) && v > clamp {
				clamp = v
			}
		}
	}

	// 3) Build and save the plot.
	grid := distanceGrid{m: m, rows: rows, cols: cols, clampMax: clamp}
	hm := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))

	pl := plot.New()
	pl.Title.Text = "distance matrix"
	pl.X.Label.Text = "point index"
	pl.Y.Label.Text = "point index"
	pl.Add(hm)

	return pl.Save(plotWidth, plotHeight, path)
}

package render

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/halvik/ripsaw/cloud"
)

// canvas size shared by all helpers.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// SaveScatter draws a 2D orthogonal projection of pc and writes it to
// path. With no axes given the projection keeps coordinates 0 and 1;
// otherwise exactly two axis indices in [0, Dim) select the projection
// plane.
func SaveScatter(pc *cloud.PointCloud, path string, axes ...int) error {
	// 1) Validate the cloud and the projection axes.
	if pc == nil {
		return ErrNilCloud
	}
	ax, ay := 0, 1
	switch len(axes) {
	case 0:
	case 2:
		ax, ay = axes[0], axes[1]
	default:
		return fmt.Errorf("%w: want 0 or 2 axes, got %d", ErrBadAxis, len(axes))
	}
	if ax < 0 || ax >= pc.Dim() || ay < 0 || ay >= pc.Dim() {
		return fmt.Errorf("%w: axes (%d,%d) with dim=%d", ErrBadAxis, ax, ay, pc.Dim())
	}

	// 2) Project onto the chosen plane.
	xys := make(plotter.XYs, pc.Len())
	for i := 0; i < pc.Len(); i++ {
		p := pc.At(i)
		xys[i].X, xys[i].Y = p[ax], p[ay]
	}

	// 3) Build and save the plot.
	pl := plot.New()
	pl.Title.Text = "point cloud"
	pl.X.Label.Text = fmt.Sprintf("axis %d", ax)
	pl.Y.Label.Text = fmt.Sprintf("axis %d", ay)

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Color = plotutil.Color(0)
	pl.Add(plotter.NewGrid(), s)

	return pl.Save(plotWidth, plotHeight, path)
}

// SaveCoordinates draws rows of an n×d coordinate matrix the same way
// SaveScatter draws a cloud. It exists so MDS embeddings can be plotted
// without hand-rolling the PointCloud conversion at every call site.
func SaveCoordinates(coords mat.Matrix, path string, axes ...int) error {
	// 1) Validate.
	if coords == nil {
		return ErrNilMatrix
	}

	// 2) Rows become points.
	r, c := coords.Dims()
	pts := make([][]float64, r)
	for i := 0; i < r; i++ {
		pts[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			pts[i][j] = coords.At(i, j)
		}
	}
	pc, err := cloud.New(pts)
	if err != nil {
		return err
	}

	return SaveScatter(pc, path, axes...)
}

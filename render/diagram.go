package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/halvik/ripsaw/persistence"
)

// SaveDiagram draws a persistence diagram and writes it to path. Each
// homology dimension gets its own glyph and legend entry, the birth=death
// diagonal is drawn for reference, and essential classes (infinite death)
// are placed at 1.05 times the largest finite coordinate so they stay on
// the canvas.
func SaveDiagram(d persistence.Diagram, path string) error {
	// 1) Validate.
	if len(d) == 0 {
		return ErrEmptyDiagram
	}

	// 2) Find the plotting scale and the highest dimension present.
	scale, maxDim := 0.0, 0
	for _, p := range d {
		if p.Birth > scale {
			scale = p.Birth
		}
		if !p.Essential() && p.Death > scale {
			scale = p.Death
		}
		if p.Dim > maxDim {
			maxDim = p.Dim
		}
	}
	if scale == 0 {
		scale = 1
	}
	ceiling := 1.05 * scale

	pl := plot.New()
	pl.Title.Text = "persistence diagram"
	pl.X.Label.Text = "birth"
	pl.Y.Label.Text = "death"

	// 3) Reference diagonal.
	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: ceiling, Y: ceiling}})
	if err != nil {
		return err
	}
	diag.LineStyle.Color = color.Gray{Y: 160}
	pl.Add(plotter.NewGrid(), diag)

	// 4) One scatter per dimension, essentials clamped to the ceiling.
	for dim := 0; dim <= maxDim; dim++ {
		pairs := d.ByDim(dim)
		if len(pairs) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(pairs))
		for i, p := range pairs {
			death := p.Death
			if p.Essential() {
				death = ceiling
			}
			xys[i].X, xys[i].Y = p.Birth, death
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Radius = vg.Points(2.5)
		s.GlyphStyle.Color = plotutil.Color(dim)
		s.GlyphStyle.Shape = plotutil.Shape(dim)
		pl.Add(s)
		pl.Legend.Add(fmt.Sprintf("H%d", dim), s)
	}
	pl.Legend.Top = false

	return pl.Save(plotWidth, plotHeight, path)
}

// Package render draws point clouds, distance matrices and persistence
// diagrams to image files using gonum.org/v1/plot.
//
// Every helper follows the same shape: build a plot, add the data, save
// to the path the caller chose. Rendering is a terminal pipeline stage:
// nothing downstream consumes the result, so the helpers return only an
// error. File format is inferred from the path extension by gonum/plot
// (.png, .svg, .pdf, ...).
//
// Display conventions for non-finite values:
//
//   - SaveHeatMap clamps +Inf ("no path") entries to the finite maximum
//     so disconnected pairs read as "as far as anything gets".
//   - SaveDiagram draws infinite deaths at 1.05× the largest finite
//     death so essential classes stay on the canvas.
//
// Errors (sentinel):
//
//   - ErrNilCloud    if the cloud is nil.
//   - ErrNilMatrix   if the matrix is nil or empty.
//   - ErrBadAxis     if a projection axis is out of range.
//   - ErrEmptyDiagram if the diagram holds no pairs.
//
// Plot construction and file I/O failures from gonum/plot propagate
// unmodified.
package render

package render

import "errors"

var (
	// ErrNilCloud indicates a nil point cloud.
	ErrNilCloud = errors.New("render: nil point cloud")

	// ErrNilMatrix indicates a nil or empty matrix.
	ErrNilMatrix = errors.New("render: nil or empty matrix")

	// ErrBadAxis indicates a projection axis outside [0, dim).
	ErrBadAxis = errors.New("render: projection axis out of range")

	// ErrEmptyDiagram indicates a persistence diagram with no pairs.
	ErrEmptyDiagram = errors.New("render: empty persistence diagram")
)

package grid

import "errors"

var (
	// ErrShape reports a material array or parameter triple whose shape
	// does not match the grid geometry.
	ErrShape = errors.New("invalid shape")

	// ErrDirection reports an axis letter outside {x, y, z}.
	ErrDirection = errors.New("invalid direction")

	// ErrFormat reports a malformed legacy geometry file.
	ErrFormat = errors.New("invalid geom format")
)

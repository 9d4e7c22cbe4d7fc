package field

import (
	"errors"

	"github.com/katalvlaran/noisegrad/vec"
)

// Sentinel errors for field operations.
var (
	// ErrBadDims indicates a requested grid width or height is not positive.
	ErrBadDims = errors.New("field: grid dimensions must be positive")

	// ErrBadStep indicates Options.Step is not positive.
	ErrBadStep = errors.New("field: step must be positive")

	// ErrGridTooSmall indicates a grid is too small for a central-difference
	// stencil (at least 3×3 required).
	ErrGridTooSmall = errors.New("field: grid must be at least 3x3")

	// ErrNonRectangular indicates rows of a supplied grid differ in length.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
)

// Options configures how a grid maps onto field coordinates.
type Options struct {
	// Origin is the world coordinate of grid cell (0,0).
	Origin vec.Vec2

	// Step is the world distance between adjacent cells; must be > 0.
	Step float64

	// Time, when nonzero, makes Scalar sample the 3D field on the plane
	// z = Time instead of the 2D field. Useful for animation frames.
	Time float64
}

// DefaultOptions returns Options with Origin at the world origin,
// Step=1, and no time plane.
func DefaultOptions() Options {
	return Options{Step: 1}
}

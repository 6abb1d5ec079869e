package life

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside the grid.
var ErrOutOfBounds = errors.New("life: coordinate out of bounds")

// ErrUnknownPattern reports a pattern name that is not registered.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// BoundsError carries the offending coordinate and the grid dimensions.
// It unwraps to ErrOutOfBounds.
type BoundsError struct {
	X, Y int
	W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

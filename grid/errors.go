package grid

import "errors"

var (
	// ErrInvalidDimension indicates rows or cols below MinDimension, a ragged
	// layout, or an even dimension where an odd one is required.
	ErrInvalidDimension = errors.New("grid: invalid dimension")
	// ErrInvalidEndpoint indicates a start or goal that is out of bounds,
	// coincides with the other endpoint, is missing, or sits on a wall.
	ErrInvalidEndpoint = errors.New("grid: invalid endpoint")
	// ErrIllegalMutation indicates an attempt to turn Start or Goal into a wall.
	ErrIllegalMutation = errors.New("grid: start and goal cannot be mutated")
	// ErrOutOfBounds indicates a coordinate outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidLayout indicates an unknown glyph in a textual layout.
	ErrInvalidLayout = errors.New("grid: invalid layout glyph")
)

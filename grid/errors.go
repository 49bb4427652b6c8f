package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrMalformedGrid indicates rows of differing lengths.
	ErrMalformedGrid = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a cell value other than Passable or Blocked.
	ErrBadCell = errors.New("grid: unknown cell value")
	// ErrInvalidRequest indicates a start or end position that is out of bounds or blocked.
	ErrInvalidRequest = errors.New("grid: invalid search request")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadLayout indicates an unrecognised character in a textual layout.
	ErrBadLayout = errors.New("grid: unrecognised layout character")
)

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateEnd indicates more than one End cell.
	ErrDuplicateEnd = errors.New("grid: more than one end cell")
	// ErrBadWeight indicates a non-wall cell with a weight ≤ 0.
	ErrBadWeight = errors.New("grid: cell weight must be positive")
	// ErrUnknownCell indicates a maze character that is not 'S', 'E', '#', ' ' or '.'.
	ErrUnknownCell = errors.New("grid: unknown cell character")
	// ErrUnknownMove indicates a path character that is not 'U', 'D', 'L' or 'R'.
	ErrUnknownMove = errors.New("grid: unknown move character")
	// ErrOutOfBounds indicates a point or a replayed move outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrHitWall indicates a replayed move that enters a wall.
	ErrHitWall = errors.New("grid: move enters a wall")
)

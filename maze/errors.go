package maze

import "errors"

// ErrMalformedMaze is wrapped by every construction error.
var ErrMalformedMaze = errors.New("maze: malformed maze")

var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates no start tile was found.
	ErrMissingStart = errors.New("maze: no start tile")
	// ErrDuplicateStart indicates more than one start tile was found.
	ErrDuplicateStart = errors.New("maze: multiple start tiles")
	// ErrMissingGoal indicates no goal tile was found.
	ErrMissingGoal = errors.New("maze: no goal tile")
	// ErrDuplicateGoal indicates more than one goal tile was found.
	ErrDuplicateGoal = errors.New("maze: multiple goal tiles")
	// ErrUnknownTile indicates a character outside the tile alphabet.
	ErrUnknownTile = errors.New("maze: unknown tile")
	// ErrOutOfBounds indicates a cell passed to FromCells lies outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrWallEndpoint indicates the start or goal was placed on a wall.
	ErrWallEndpoint = errors.New("maze: start or goal on a wall")
)

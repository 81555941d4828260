package maze

import "errors"

var (
	// Construction errors
	ErrInvalidDimension = errors.New("maze: width and height must be positive")
	ErrOutOfBounds      = errors.New("maze: coordinate outside maze bounds")
	ErrSameEntryExit    = errors.New("maze: entry and exit must be different")

	// ErrNotAdjacent means a wall operation was asked to act on two cells that
	// do not share a wall. It always indicates a logic error in the caller.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")

	// ErrNoPath is returned by the solver when the exit cannot be reached.
	ErrNoPath = errors.New("maze: no path from entry to exit")
)

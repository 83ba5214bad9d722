package twisty

import "errors"

// Sentinel errors for the twisty package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("twisty: invalid move notation")

	// Engine errors
	ErrInvalidSlice    = errors.New("twisty: slice index out of range")
	ErrSliceIncomplete = errors.New("twisty: slice does not contain 9 cubies")
	ErrCubieNotFound   = errors.New("twisty: no cubie with that id")
)

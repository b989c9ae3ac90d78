package debugtex

import "errors"

// Configuration errors returned by the Config validation methods.
var (
	// ErrInvalidCanvas is returned when the canvas size is not positive.
	ErrInvalidCanvas = errors.New("debugtex: canvas size must be positive")

	// ErrTooFewCells is returned when fewer than two cells per axis are
	// requested. Cell colors are interpolated over x/(N-1), which is
	// undefined for a single cell.
	ErrTooFewCells = errors.New("debugtex: at least 2 cells per axis are required")

	// ErrTooManyCells is returned when there are more columns than letters
	// available for the cell labels.
	ErrTooManyCells = errors.New("debugtex: too many cells for column letters")

	// ErrInvalidGrid is returned when the debug grid has no main cells or
	// no sub cells.
	ErrInvalidGrid = errors.New("debugtex: grid divisions must be at least 1")
)

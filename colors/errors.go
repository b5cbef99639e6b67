package colors

import "errors"

var (
	// ErrInvalidColor indicates a color string that is not valid hex
	// or not one of the accepted lengths.
	ErrInvalidColor = errors.New("invalid color format")
)

package csscolor

import (
	"errors"
	"fmt"
)

// ErrRelativeColor is returned for the relative color form color(from ...),
// which this package does not support.
var ErrRelativeColor = errors.New("relative color syntax is not supported")

// UnsupportedFunctionError is returned when a function token names a color
// function that is not in the registry.
type UnsupportedFunctionError struct {
	Name string
}

func (e *UnsupportedFunctionError) Error() string {
	return fmt.Sprintf("unsupported color function %q", e.Name)
}

// UnsupportedColorSpaceError is returned by the color() decoder for a color
// space outside its fixed table.
type UnsupportedColorSpaceError struct {
	Name string
}

func (e *UnsupportedColorSpaceError) Error() string {
	return fmt.Sprintf("unsupported color space %q", e.Name)
}

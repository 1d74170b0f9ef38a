package algo

import (
	"errors"
	"fmt"
)

// ErrUnmappedCoordinate means a point was looked up in a coordinate map that
// was not built from it. It indicates a bug in the caller, never bad input.
var ErrUnmappedCoordinate = errors.New("coordinate not in map")

// UnmappedError reports which coordinate was missing.
type UnmappedError struct {
	Axis  string
	Value int64
}

func (e *UnmappedError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Axis, e.Value, ErrUnmappedCoordinate)
}

func (e *UnmappedError) Unwrap() error {
	return ErrUnmappedCoordinate
}

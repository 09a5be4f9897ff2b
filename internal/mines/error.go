package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("point out of bounds")
	ErrInsufficientSpace = errors.New("not enough space for mines")
	ErrInvalidParams     = errors.New("invalid game params")
)

type OutOfBoundsError struct {
	Point      Point
	Rows, Cols int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"point %s out of range - grid (%d, %d)", e.Point, e.Rows, e.Cols,
	)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

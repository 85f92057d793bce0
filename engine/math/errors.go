package math

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrUnknownQuality       = errors.New("unknown interpolation quality")
	ErrUnknownLerpDirection = errors.New("unknown lerp direction")
)

// IndexError reports a component index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("component index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexError(i, n int) error {
	return &IndexError{Index: i, Len: n}
}

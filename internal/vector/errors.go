package vector

import (
	"errors"
	"fmt"
)

// Domain errors for checked operations.
var (
	// ErrOutOfRange indicates an index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmptyContainer indicates an operation that needs at least one element.
	ErrEmptyContainer = errors.New("vector: container is empty")
)

// OpError records the operation and vector state that caused a failure.
// Index is -1 for operations that take no index.
type OpError struct {
	Op      string
	Index   int
	Size    int
	Wrapped error
}

func (e *OpError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s (size %d)", e.Op, e.Wrapped, e.Size)
	}
	return fmt.Sprintf("%s: %s (index %d, size %d)", e.Op, e.Wrapped, e.Index, e.Size)
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}

func (v *Vector[T]) rangeError(op string, idx int) error {
	return &OpError{Op: op, Index: idx, Size: v.size, Wrapped: ErrOutOfRange}
}

func (v *Vector[T]) emptyError(op string) error {
	return &OpError{Op: op, Index: -1, Size: v.size, Wrapped: ErrEmptyContainer}
}

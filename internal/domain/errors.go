package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest signals malformed caller input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrIndexUnavailable signals an unreachable or failing backing index.
	ErrIndexUnavailable = errors.New("index unavailable")
)

// IndexUnavailableError wraps ErrIndexUnavailable with the failing index
// and the underlying transport or engine cause.
type IndexUnavailableError struct {
	Index string
	Cause error
}

func (e *IndexUnavailableError) Error() string {
	return fmt.Sprintf("index %q unavailable: %v", e.Index, e.Cause)
}

func (e *IndexUnavailableError) Unwrap() error { return ErrIndexUnavailable }

// NewIndexUnavailable creates an index failure error.
func NewIndexUnavailable(index string, cause error) error {
	return &IndexUnavailableError{Index: index, Cause: cause}
}

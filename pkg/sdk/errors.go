package lawsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors for API failures. Use errors.Is() to check.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
)

// APIError carries the HTTP status and message of a failed call. It
// wraps the matching sentinel so errors.Is still works.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case 400:
		return ErrInvalidRequest
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	default:
		return nil
	}
}

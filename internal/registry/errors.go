package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL rejects anything that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrNotFound means no endpoint carries the given code.
	ErrNotFound = errors.New("endpoint not found")

	// ErrPersist wraps store write failures. The operation's in-memory
	// effect is not committed when this is returned.
	ErrPersist = errors.New("persist failed")
)

// DuplicateError reports a registration that collides with an existing URL.
// It carries the existing code so the caller can recover without creating a
// new registration.
type DuplicateError struct {
	Code string
	URL  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("url already monitored as %s", e.Code)
}

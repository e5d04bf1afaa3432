package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sailing listing service.
var (
	// ErrInvalidRequest indicates the caller supplied invalid listing parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSourceUnavailable indicates the upstream answered with a non-success status.
	ErrSourceUnavailable = errors.New("sailing source unavailable")

	// ErrInvalidPayload indicates the upstream body could not be decoded.
	ErrInvalidPayload = errors.New("invalid sailing payload")
)

// SourceError wraps a failure from a specific sailing source.
type SourceError struct {
	// Source is the name of the source that failed
	Source string

	// Err is the underlying error
	Err error
}

// NewSourceError creates a SourceError for the given source.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    err,
	}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SourceError) Unwrap() error {
	return e.Err
}

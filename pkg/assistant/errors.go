// Package assistant provides the concierge engine: intent
// classification, profile retrieval, templated or delegated answers,
// and session topic tracking.
package assistant

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProviderUnavailable indicates the generative-model call failed,
	// timed out, or returned a degenerate reply. Internal signal only:
	// turns fall back to local templates instead of surfacing it.
	ErrProviderUnavailable = errors.New("model provider unavailable")

	// ErrProfileNotFound indicates no profile record could be loaded.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStorageOperation indicates a transcript store operation failed.
	ErrStorageOperation = errors.New("storage operation failed")
)

// AssistantError wraps errors with operation context.
//
// The format is: "chatfolio: <Op>: <Err>".
type AssistantError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns the formatted error message.
func (e *AssistantError) Error() string {
	return fmt.Sprintf("chatfolio: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError wraps err with operation context, or returns nil if
// err is nil.
func NewAssistantError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &AssistantError{Op: op, Err: err}
}

package store

import (
	"errors"
	"strings"
)

// Sentinel errors for lookups. Handlers map these to 404 responses,
// keeping "missing entity" distinct from "invalid input".
var (
	// ErrUserNotFound is returned when a user ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound is returned when a task ID does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError carries the full ordered list of business-rule
// violations for a rejected write. The list is never collapsed before
// reaching the HTTP layer, which renders it as {"errors": [...]}.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError wraps the given messages in a *ValidationError.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

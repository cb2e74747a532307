package service

import (
	"errors"
	"fmt"

	"github.com/jrescalona/rainalert/internal/store"
)

// Common service errors. Callers check them with errors.Is.
var (
	// ErrProjectNotFound indicates that the project does not exist.
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectServiceError wraps errors from the project service with context.
type ProjectServiceError struct {
	// Operation is the operation that failed (e.g., "add_project", "update_project")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ProjectServiceError.
func (e *ProjectServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("project service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProjectServiceError) Unwrap() error {
	return e.Err
}

// NewProjectServiceError creates a new ProjectServiceError.
// It returns known sentinel errors directly without wrapping.
func NewProjectServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrProjectNotFound) || errors.Is(err, store.ErrProjectNotFound) {
		return ErrProjectNotFound
	}

	return &ProjectServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

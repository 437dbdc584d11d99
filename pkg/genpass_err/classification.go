// pkg/genpass_err/classification.go
//
// Error classification with stable exit codes, so scripts wrapping genpass
// can distinguish bad input from I/O failure.

package genpass_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling.
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem/storage issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - input validation failures (exit 2)
	CategoryValidation
	// CategoryInternal - bugs in genpass itself (exit 3)
	CategoryInternal
)

// ClassifiedError wraps an error with category and remediation info.
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}
	return sb.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error category.
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryInternal:
		return 3
	default:
		return 1
	}
}

// GetExitCode extracts an exit code from any error.
// Returns 0 for nil, the category code for classified errors, 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}
	return 1
}

// NewValidationError creates an error for input validation failures.
// Validation errors are always expected: they carry the UserError marker.
func NewValidationError(message string, remediation ...string) error {
	return NewExpectedError(&ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Remediation: remediation,
	})
}

// NewStorageError creates an error for filesystem or secret-store failures.
func NewStorageError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategorySystem,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewInternalError creates an error for genpass bugs.
func NewInternalError(message string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInternal,
		Message:  message,
		Cause:    cause,
	}
}

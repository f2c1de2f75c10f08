// Package errors provides a lightweight structured error type (NavError)
// for category-based classification of navigation build failures.
package errors

import (
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory represents the category of a NavError for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryInput      ErrorCategory = "input"

	// Output errors
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Aborts the run
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// NavError is a structured error with category, severity, and context
type NavError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for NavError
type ContextFields map[string]any

// Error implements the error interface. Context fields are appended in key
// order so the offending id/line is always part of the message.
func (e *NavError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s", e.Category, e.Severity, e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Context[k])
		}
		b.WriteByte(']')
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *NavError) WithContext(key string, value any) *NavError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new NavError
func New(category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new NavError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *NavError {
	return &NavError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first NavError in err's chain.
func As(err error) (*NavError, bool) {
	var ne *NavError
	if stdErrors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ne, ok := As(err); ok {
		return ne.Category == category
	}
	return false
}

// IsFatal reports whether err carries fatal severity.
func IsFatal(err error) bool {
	if ne, ok := As(err); ok {
		return ne.Severity == SeverityFatal
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a NavError
func GetCategory(err error) ErrorCategory {
	if ne, ok := As(err); ok {
		return ne.Category
	}
	return CategoryInternal
}

// ContextValue returns a context field of the first NavError in err's chain.
func ContextValue(err error, key string) (any, bool) {
	ne, ok := As(err)
	if !ok || ne.Context == nil {
		return nil, false
	}
	v, ok := ne.Context[key]
	return v, ok
}

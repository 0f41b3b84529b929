// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a user-correctable input error, e.g. a
// blank search query. This is the only error category surfaced
// synchronously to callers of the search pipeline.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// SourceError represents a failure while fetching or parsing one
// storefront. Source errors never cross the adapter boundary; adapters
// log them and return empty results.
type SourceError struct {
	Store      string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s: %d - %s", e.Store, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("source %s: %s", e.Store, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSource checks if an error is a SourceError
func IsSource(err error) bool {
	var sourceErr *SourceError
	return errors.As(err, &sourceErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required input is missing or empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedLanguage is returned when a script language other than sh is requested.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// ValidationError represents a validation error with a field name.
// Message is safe to show to API clients as is.
type ValidationError struct {
	Field   string
	Message string
	// Err is the sentinel this error matches under errors.Is.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

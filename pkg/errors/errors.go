package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "VALIDATION"
	ErrorTypeNotFound    ErrorType = "NOT_FOUND"
	ErrorTypeConflict    ErrorType = "CONFLICT"
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
	ErrorTypeInternal    ErrorType = "INTERNAL"
)

// AppError is the custom error type for the application
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewConflict creates a conflict error
func NewConflict(message string) error {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

// NewUnavailable signals that a dependency refused the call, e.g. an open circuit breaker.
func NewUnavailable(message string, err error) error {
	return &AppError{Type: ErrorTypeUnavailable, Message: message, Err: err}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}

	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the ErrorType of err, or INTERNAL for anything that is not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// MessageOf returns the client-facing message carried by an AppError.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}

func IsValidation(err error) bool  { return err != nil && TypeOf(err) == ErrorTypeValidation }
func IsNotFound(err error) bool    { return err != nil && TypeOf(err) == ErrorTypeNotFound }
func IsConflict(err error) bool    { return err != nil && TypeOf(err) == ErrorTypeConflict }
func IsUnavailable(err error) bool { return err != nil && TypeOf(err) == ErrorTypeUnavailable }
func IsInternal(err error) bool    { return err != nil && TypeOf(err) == ErrorTypeInternal }

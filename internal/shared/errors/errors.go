// Package errors provides application-level error types and utilities.
// It defines the error taxonomy surfaced by use cases: validation, not found,
// persistence, remote fetch and notification errors, plus the HTTP-facing
// authorization errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypePersistence  ErrorType = "persistence_error"
	ErrorTypeRemoteFetch  ErrorType = "remote_fetch_error"
	ErrorTypeNotification ErrorType = "notification_error"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeRateLimited  ErrorType = "rate_limited"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType    `json:"type"`
	Message string       `json:"message"`
	Code    int          `json:"code"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	if len(e.Fields) > 0 {
		names := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			names[i] = f.Field
		}
		return fmt.Sprintf("%s: %s [%s]", e.Type, e.Message, strings.Join(names, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying cause for errors.Is / errors.As chains.
// The cause is never serialized.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewFieldValidationError creates a validation error enumerating invalid fields.
func NewFieldValidationError(message string, fields []FieldError) *AppError {
	err := newAppError(ErrorTypeValidation, http.StatusBadRequest, message, nil)
	err.Fields = fields
	return err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewPersistenceError creates an error for an unavailable or failing store.
func NewPersistenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePersistence, http.StatusInternalServerError, message, details)
}

// NewRemoteFetchError creates an error for a failed object storage read.
// reason is exposed as Details so callers can tell failure paths apart.
func NewRemoteFetchError(code int, message string, reason string) *AppError {
	return newAppError(ErrorTypeRemoteFetch, code, message, []string{reason})
}

// NewNotificationError creates an error for a failed webhook forward.
func NewNotificationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotification, http.StatusBadGateway, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewRateLimitedError creates a new too-many-requests error
func NewRateLimitedError(message string) *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests, message, nil)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsPersistenceError checks if the error is a persistence error
func IsPersistenceError(err error) bool {
	return isType(err, ErrorTypePersistence)
}

// IsRemoteFetchError checks if the error is a remote fetch error
func IsRemoteFetchError(err error) bool {
	return isType(err, ErrorTypeRemoteFetch)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL / SQLite unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}

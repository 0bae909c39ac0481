package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches by code so wrapped copies compare equal to the sentinel
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if errors.As(target, &domainErr) {
		return e.Code == domainErr.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Authentication / authorization
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "unauthorized")
	ErrForbidden          = NewDomainError("FORBIDDEN", "forbidden")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid employee id or password")
	ErrInvalidToken       = NewDomainError("INVALID_TOKEN", "invalid or expired token")

	// Resources
	ErrUserNotFound = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrLogNotFound  = NewDomainError("LOG_NOT_FOUND", "log not found")

	// Validation
	ErrValidationFailed = NewDomainError("VALIDATION_FAILED", "validation failed")

	// System
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request; invalid credentials included so login failures
	// match the original contract
	case "VALIDATION_FAILED", "INVALID_CREDENTIALS":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_TOKEN":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND", "LOG_NOT_FOUND":
		return http.StatusNotFound

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts the user-visible error message. Wrapped
// internals stay out of responses.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return "internal server error"
}

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeProcessing ErrorType = "processing"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeEncrypted  ErrorType = "encrypted"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewProcessingError creates a new processing error
func NewProcessingError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeProcessing,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromDomain maps a domain error onto the transport taxonomy. Handlers use it
// so the services never learn about HTTP.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var invalidPages *domain.InvalidPagesError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &invalidPages):
		return &AppError{
			Type:       ErrorTypeValidation,
			Message:    "invalid page selection",
			Details:    invalidPages.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	case errors.As(err, &validation):
		return &AppError{
			Type:       ErrorTypeValidation,
			Message:    validation.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrFileNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrNoDocumentLoaded),
		errors.Is(err, domain.ErrNotLoaded):
		return &AppError{
			Type:       ErrorTypeNotFound,
			Message:    err.Error(),
			StatusCode: http.StatusNotFound,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrPageOutOfRange),
		errors.Is(err, domain.ErrNotAPDF):
		return &AppError{
			Type:       ErrorTypeValidation,
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrEncrypted):
		return &AppError{
			Type:       ErrorTypeEncrypted,
			Message:    "PDF is encrypted, please provide an unencrypted PDF",
			StatusCode: http.StatusUnprocessableEntity,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrCorrupted):
		return &AppError{
			Type:       ErrorTypeProcessing,
			Message:    err.Error(),
			StatusCode: http.StatusUnprocessableEntity,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrPermissionDenied):
		return &AppError{
			Type:       ErrorTypePermission,
			Message:    err.Error(),
			StatusCode: http.StatusConflict,
			Cause:      err,
		}
	case errors.Is(err, domain.ErrDirectoryCreate),
		errors.Is(err, domain.ErrWriteFailed):
		return &AppError{
			Type:       ErrorTypeConflict,
			Message:    err.Error(),
			StatusCode: http.StatusConflict,
			Cause:      err,
		}
	default:
		return &AppError{
			Type:       ErrorTypeInternal,
			Message:    "internal error",
			Details:    err.Error(),
			StatusCode: http.StatusInternalServerError,
			Cause:      err,
		}
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

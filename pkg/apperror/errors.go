package apperror

import (
	"errors"
	"net/http"

	"github.com/prasety/kasirku-api/pkg/money"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code     int          `json:"code"`
	Message  string       `json:"message"`
	Errors   []FieldError `json:"errors,omitempty"`
	Shortage int64        `json:"shortage,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}

	// Finalize errors
	ErrEmptyCart = &AppError{Code: http.StatusBadRequest, Message: "Keranjang masih kosong"}

	// Confirmation protocol errors
	ErrInvalidConfirmToken = &AppError{Code: http.StatusBadRequest, Message: "Konfirmasi tidak valid atau sudah kedaluwarsa"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewInsufficientPaymentError creates the finalize rejection for an
// underpaid cart. The shortage is total - tendered, always positive.
func NewInsufficientPaymentError(shortage int64) *AppError {
	return &AppError{
		Code:     http.StatusBadRequest,
		Message:  "Uang kurang " + money.Format(shortage),
		Shortage: shortage,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " tidak ditemukan",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

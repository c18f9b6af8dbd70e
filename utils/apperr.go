package utils

import (
	"fmt"
	"net/http"
)

// AppError is an application error carrying the HTTP status it should be
// reported with. Details is a short machine-readable code the client can key
// UI messaging off; Err is the wrapped cause, exposed only in development.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of e with err attached as the cause.
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Details: e.Details, Err: err}
}

func NewAppError(code int, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func Validation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Details: "VALIDATION_ERROR"}
}

func NotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Details: "NOT_FOUND"}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Details: "PERSISTENCE_ERROR", Err: err}
}

var (
	ErrUnauthorized    = NewAppError(http.StatusUnauthorized, "Invalid token", "INVALID_TOKEN")
	ErrNoToken         = NewAppError(http.StatusUnauthorized, "No token provided", "UNAUTHORIZED")
	ErrForbidden       = NewAppError(http.StatusForbidden, "Admin access required", "FORBIDDEN")
	ErrAccessDenied    = NewAppError(http.StatusForbidden, "Access denied", "FORBIDDEN")
	ErrInvalidLogin    = NewAppError(http.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS")
	ErrUserExists      = NewAppError(http.StatusBadRequest, "User already exists", "USER_EXISTS")
	ErrEmptyCart       = NewAppError(http.StatusBadRequest, "Cart is empty", "EMPTY_CART")
	ErrInvalidCriteria = NewAppError(http.StatusBadRequest, "Invalid filter criteria", "INVALID_CRITERIA")
)

// Package apperr defines the stable set of error kinds raised by the storage
// and auth layers, and the single mapper that turns any of them into a
// client-facing status and message. Handlers must never serialize raw errors.
package apperr

import (
	"errors"
	"net/http"
)

// Error kinds. Lower layers wrap these with %w so callers can classify with
// errors.Is instead of matching message text.
var (
	ErrDuplicateEmail       = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotFound             = errors.New("not found")
	ErrDuplicateOrderCode   = errors.New("order code already exists")
	ErrForbidden            = errors.New("forbidden")
	ErrStorageMisconfigured = errors.New("storage is not configured")
	ErrStorageUnreachable   = errors.New("storage is unreachable")
)

// ValidationError carries the first violated rule's message for a request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation wraps a rule message into a ValidationError.
func Validation(msg string) error { return &ValidationError{Message: msg} }

// Map classifies err into an HTTP status and a stable client-facing message.
// Unclassified errors map to 500 with the caller's fallback message; when
// production is false the raw error is appended for debuggability.
func Map(err error, fallback string, production bool) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusBadRequest, "User with this email already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, ErrStorageMisconfigured):
		return http.StatusInternalServerError, "Storage is not configured"
	case errors.Is(err, ErrStorageUnreachable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	}

	msg := fallback
	if !production {
		msg = fallback + ": " + err.Error()
	}
	return http.StatusInternalServerError, msg
}

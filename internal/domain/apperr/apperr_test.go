package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapClassifiedKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate email", ErrDuplicateEmail, http.StatusBadRequest, "User with this email already exists"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"not found", ErrNotFound, http.StatusNotFound, "Not found"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "Admin access required"},
		{"misconfigured", ErrStorageMisconfigured, http.StatusInternalServerError, "Storage is not configured"},
		{"unreachable", ErrStorageUnreachable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"validation", Validation("Password must be at least 6 characters"), http.StatusBadRequest, "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Map(tt.err, "fallback", true)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMapWrappedKinds(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", ErrDuplicateEmail)
	status, msg := Map(wrapped, "fallback", true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User with this email already exists", msg)

	joined := errors.Join(ErrInvalidToken, errors.New("token is expired"))
	status, msg = Map(joined, "fallback", true)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", msg)
}

func TestMapUnclassified(t *testing.T) {
	err := errors.New("pipe burst")

	status, msg := Map(err, "Registration failed", true)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Registration failed", msg)

	status, msg = Map(err, "Registration failed", false)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Registration failed: pipe burst", msg)
}

func TestMapNil(t *testing.T) {
	status, msg := Map(nil, "fallback", true)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, msg)
}

func TestMapNeverMatchesOnMessageText(t *testing.T) {
	// An unrelated error whose text mimics a known kind must stay a 500.
	err := errors.New("user with this email already exists")
	status, _ := Map(err, "fallback", true)
	assert.Equal(t, http.StatusInternalServerError, status)
}

// Package common defines shared constants and sentinel errors used across
// the API-access and session layers of the goalline client. Callers should
// use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable is returned when a request never reached the backend or
	// no response came back. Its text is the generic transport fallback.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrValidation matches client-side validation failures and 400/422 responses.
	ErrValidation = errors.New("validation error")
)

// APIError is a failure reported by the backend with a non-2xx status.
// Message is the backend's human-readable text, kept verbatim.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("request failed: %d %s", e.Status, text)
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

// Is lets errors.Is match an APIError against the sentinel for its status class.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}

// ValidationError builds an ErrValidation-wrapping error with a readable reason.
func ValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

package http

import (
	"errors"
	"net/http"

	"voice-task-uploader/internal/auth"
)

// errorStatus maps domain errors to HTTP status codes.
func (h *handler) errorStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// mapError hides internals behind a stable message for unexpected errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnsupportedLanguage):
		return err
	default:
		return errors.New("internal server error")
	}
}

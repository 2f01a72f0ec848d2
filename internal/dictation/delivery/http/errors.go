package http

import (
	"errors"
	"net/http"

	"voice-task-uploader/internal/dictation"
	"voice-task-uploader/pkg/whisper"
)

// errorStatus maps domain errors to HTTP status codes.
func (h *handler) errorStatus(err error) int {
	switch {
	case errors.Is(err, dictation.ErrNoAudio),
		errors.Is(err, dictation.ErrMissingOpenAIKey),
		errors.Is(err, whisper.ErrEmptyAudio),
		errors.Is(err, whisper.ErrClipTooLong):
		return http.StatusBadRequest
	case errors.Is(err, whisper.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// mapError hides internals behind a stable message for unexpected errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dictation.ErrNoAudio),
		errors.Is(err, dictation.ErrMissingOpenAIKey),
		errors.Is(err, whisper.ErrEmptyAudio),
		errors.Is(err, whisper.ErrClipTooLong),
		errors.Is(err, whisper.ErrPayloadTooLarge):
		return err
	default:
		return errors.New("internal server error")
	}
}

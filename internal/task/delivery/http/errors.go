package http

import (
	"errors"
	"net/http"

	"voice-task-uploader/internal/task"
	"voice-task-uploader/pkg/todoist"
)

// errorStatus maps domain errors to HTTP status codes. A Todoist error
// keeps its upstream status; a rejected token is surfaced as-is.
func (h *handler) errorStatus(err error) int {
	var apiErr *todoist.APIError
	switch {
	case errors.Is(err, task.ErrEmptyContent),
		errors.Is(err, task.ErrMissingTaskSummary),
		errors.Is(err, task.ErrNoProjectSelected),
		errors.Is(err, task.ErrMissingTodoistToken):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, todoist.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// mapError hides internals behind a stable message for unexpected errors.
func (h *handler) mapError(err error) error {
	var apiErr *todoist.APIError
	switch {
	case errors.Is(err, task.ErrEmptyContent),
		errors.Is(err, task.ErrMissingTaskSummary),
		errors.Is(err, task.ErrNoProjectSelected),
		errors.Is(err, task.ErrMissingTodoistToken),
		errors.Is(err, todoist.ErrUnauthorized),
		errors.As(err, &apiErr):
		return err
	default:
		return errors.New("failed to reach Todoist")
	}
}

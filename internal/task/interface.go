package task

import (
	"context"

	"voice-task-uploader/internal/model"
)

// UseCase defines the business logic interface for the task domain:
// submitting the user-edited suggestion text to Todoist.
type UseCase interface {
	// Submit parses the edited section text and creates the parent task
	// plus one subtask per task item in the account's Todoist project.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
}

package task

import (
	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/todoist"
)

// SubmitInput is the user-edited suggestion ready for Todoist.
type SubmitInput struct {
	// Content is the edited suggestion text in !!Key!! section format.
	Content string

	// Structured is the client's copy of the suggestion. When nil the
	// payload is derived from Content's sections instead.
	Structured *model.Suggestion

	// ProjectID overrides the account's default Todoist project.
	ProjectID string
}

// SubmitOutput reports what was created.
type SubmitOutput struct {
	Task       *todoist.Task
	SubtaskIDs []string

	// Sections is the parsed section map, echoed back to the client.
	Sections map[string]string

	// Structured is the payload actually sent to Todoist.
	Structured model.Suggestion

	// Calendar mirror of the parent task; empty when no calendar is
	// configured or the task has no due date. A failure is non-fatal and
	// reported in CalendarError.
	CalendarEventID string
	CalendarError   string
}

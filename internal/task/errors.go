package task

import "errors"

var (
	// ErrMissingTodoistToken indicates the account has no Todoist API token configured
	ErrMissingTodoistToken = errors.New("no Todoist API token configured for this account")

	// ErrEmptyContent indicates the submitted content was empty
	ErrEmptyContent = errors.New("task content must not be empty")

	// ErrMissingTaskSummary indicates the content has no Task Summary section
	ErrMissingTaskSummary = errors.New("task content has no Task Summary section")

	// ErrNoProjectSelected indicates neither the request nor the account names a project
	ErrNoProjectSelected = errors.New("no Todoist project selected")
)

package auth

import (
	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/todoist"
)

// LoginInput carries the credentials from the login form.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the minted session.
type LoginOutput struct {
	Session model.Session
}

// LanguageChoice is one entry of the language picker.
type LanguageChoice struct {
	Key    string
	Option model.LanguageOption
}

// PageOutput is the data behind the recording page.
type PageOutput struct {
	Username            string
	Languages           []LanguageChoice
	SelectedLanguageKey string
	DefaultProjectID    string
	Projects            []todoist.Project
	// ProjectsError carries a non-fatal project listing failure; the page
	// still renders without the dropdown.
	ProjectsError string
}

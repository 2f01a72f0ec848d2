package auth

import (
	"context"

	"voice-task-uploader/internal/model"
)

// UseCase defines the business logic interface for authentication and
// session-bound preferences.
type UseCase interface {
	// Login verifies credentials and mints a session seeded with the
	// account's default transcription language.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout removes the session.
	Logout(ctx context.Context, sessionID string) error

	// Page assembles the data behind the recording page: language picker
	// state and the account's Todoist projects.
	Page(ctx context.Context, sc model.Scope, sess model.Session) (PageOutput, error)

	// SetLanguage updates the session's transcription language selection.
	SetLanguage(ctx context.Context, sess model.Session, key string) (model.Session, error)
}

package session

import (
	"context"
	"errors"

	"voice-task-uploader/internal/model"
)

// ErrNotFound indicates the session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// IStore is the interface for session persistence. Two backends exist:
// an in-process LRU for single-instance deployments and Redis for
// multi-instance ones.
type IStore interface {
	// Create mints a new session for the username with the given
	// transcription language key.
	Create(ctx context.Context, username, languageKey string) (model.Session, error)

	// Get returns the session for the given id.
	Get(ctx context.Context, id string) (model.Session, error)

	// Save persists an updated session (e.g. a language change).
	Save(ctx context.Context, sess model.Session) error

	// Delete removes the session.
	Delete(ctx context.Context, id string) error
}

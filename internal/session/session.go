package session

import (
	"time"

	"github.com/google/uuid"

	"voice-task-uploader/internal/model"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

func newSession(username, languageKey string, ttl time.Duration) model.Session {
	if _, ok := model.LanguageOptions[languageKey]; !ok {
		languageKey = model.FallbackLanguageKey
	}

	now := time.Now()
	return model.Session{
		ID:           uuid.NewString(),
		Username:     username,
		LanguageKey:  languageKey,
		LanguageCode: model.LanguageOptions[languageKey].Code,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

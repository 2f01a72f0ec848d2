package model

import "time"

// Session binds a browser session identifier to a username, plus the
// per-session transcription language selection.
type Session struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	LanguageKey  string    `json:"language_key"`
	LanguageCode string    `json:"language_code"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry time.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

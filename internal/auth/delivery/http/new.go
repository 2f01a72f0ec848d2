package http

import (
	"voice-task-uploader/internal/auth"
	"voice-task-uploader/pkg/log"
)

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	MaxAgeSeconds int
	Secure        bool
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}

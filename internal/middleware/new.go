package middleware

import (
	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/log"
)

// SessionCookieName is the browser cookie carrying the session id.
const SessionCookieName = "session_id"

type Middleware struct {
	l        log.Logger
	sessions session.IStore
	limiter  *loginRateLimiter
}

// New creates the middleware set. loginRatePerMin of 0 disables the
// login rate limit.
func New(l log.Logger, sessions session.IStore, loginRatePerMin int) Middleware {
	var limiter *loginRateLimiter
	if loginRatePerMin > 0 {
		limiter = newLoginRateLimiter(loginRatePerMin)
	}
	return Middleware{
		l:        l,
		sessions: sessions,
		limiter:  limiter,
	}
}

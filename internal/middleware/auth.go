package middleware

import (
	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/model"
	"voice-task-uploader/pkg/response"
)

const (
	scopeKey   = "scope"
	sessionKey = "session"
)

// Auth requires a valid session cookie. On success the request scope and
// session are stored on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err != nil || id == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sess, err := m.sessions.Get(c.Request.Context(), id)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{Username: sess.Username, SessionID: sess.ID})
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetScope returns the request scope set by Auth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// GetSession returns the session set by Auth.
func GetSession(c *gin.Context) model.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(model.Session); ok {
			return sess
		}
	}
	return model.Session{}
}

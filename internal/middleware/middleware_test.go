package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/log"
)

func newAuthRouter(t *testing.T, store session.IStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := New(log.NewNop(), store, 0)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc := GetScope(c)
		sess := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"username": sc.Username, "language": sess.LanguageKey})
	})
	return r
}

func TestAuth(t *testing.T) {
	store := session.NewMemory(time.Hour)
	r := newAuthRouter(t, store)

	t.Run("Missing Cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Session", func(t *testing.T) {
		sess, err := store.Create(context.Background(), "alice", "PL")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
		assert.Contains(t, w.Body.String(), "PL")
	})
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Throttles After Burst", func(t *testing.T) {
		mw := New(log.NewNop(), session.NewMemory(time.Hour), 2)
		r := gin.New()
		r.POST("/login", mw.LoginRateLimit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		codes := make(map[int]int)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes[w.Code]++
		}

		assert.Greater(t, codes[http.StatusTooManyRequests], 0, "expected some throttled requests")
		assert.Greater(t, codes[http.StatusOK], 0, "expected some allowed requests")
	})

	t.Run("Disabled When Rate Is Zero", func(t *testing.T) {
		mw := New(log.NewNop(), session.NewMemory(time.Hour), 0)
		r := gin.New()
		r.POST("/login", mw.LoginRateLimit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-uploader/internal/auth"
	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/internal/model"
	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/log"
)

type fakeUseCase struct {
	loginOut auth.LoginOutput
	loginErr error
	pageOut  auth.PageOutput
	langErr  error
}

func (f *fakeUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUseCase) Logout(ctx context.Context, sessionID string) error { return nil }

func (f *fakeUseCase) Page(ctx context.Context, sc model.Scope, sess model.Session) (auth.PageOutput, error) {
	return f.pageOut, nil
}

func (f *fakeUseCase) SetLanguage(ctx context.Context, sess model.Session, key string) (model.Session, error) {
	if f.langErr != nil {
		return model.Session{}, f.langErr
	}
	sess.LanguageKey = strings.ToUpper(key)
	return sess, nil
}

func newTestRouter(t *testing.T, uc auth.UseCase) (*gin.Engine, session.IStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemory(time.Hour)
	mw := middleware.New(log.NewNop(), sessions, 0)
	h := New(log.NewNop(), uc, CookieConfig{MaxAgeSeconds: 3600})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r, sessions
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success Sets Cookie", func(t *testing.T) {
		uc := &fakeUseCase{loginOut: auth.LoginOutput{Session: model.Session{
			ID: "sess-1", Username: "alice", LanguageKey: "PL", LanguageCode: "pl",
		}}}
		r, _ := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"alice","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"language_key":"PL"`)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "sess-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		uc := &fakeUseCase{loginErr: auth.ErrInvalidCredentials}
		r, _ := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"alice","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Missing Body Fields", func(t *testing.T) {
		r, _ := newTestRouter(t, &fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	r, sessions := newTestRouter(t, &fakeUseCase{})
	sess, err := sessions.Create(context.Background(), "alice", "US")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.ID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestPageHandler(t *testing.T) {
	uc := &fakeUseCase{pageOut: auth.PageOutput{
		Username:            "alice",
		SelectedLanguageKey: "PL",
		Languages: []auth.LanguageChoice{
			{Key: "US", Option: model.LanguageOptions["US"]},
		},
	}}
	r, sessions := newTestRouter(t, uc)
	sess, err := sessions.Create(context.Background(), "alice", "PL")
	require.NoError(t, err)

	t.Run("Requires Session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/page", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Returns Page Data", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/page", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.ID})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"selected_language_key":"PL"`)
	})
}

func TestSetLanguageHandler(t *testing.T) {
	t.Run("Unsupported Language", func(t *testing.T) {
		uc := &fakeUseCase{langErr: auth.ErrUnsupportedLanguage}
		r, sessions := newTestRouter(t, uc)
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/language",
			strings.NewReader(`{"language":"DE"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.ID})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Updates Selection", func(t *testing.T) {
		r, sessions := newTestRouter(t, &fakeUseCase{})
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/language",
			strings.NewReader(`{"language":"pl"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.ID})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"language_key":"PL"`)
	})
}

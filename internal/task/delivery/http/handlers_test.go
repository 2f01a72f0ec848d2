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

	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/internal/model"
	"voice-task-uploader/internal/session"
	"voice-task-uploader/internal/task"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
)

type fakeUseCase struct {
	lastInput task.SubmitInput
	out       task.SubmitOutput
	err       error
}

func (f *fakeUseCase) Submit(_ context.Context, _ model.Scope, input task.SubmitInput) (task.SubmitOutput, error) {
	f.lastInput = input
	return f.out, f.err
}

func newTestRouter(t *testing.T, uc task.UseCase) (*gin.Engine, session.IStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemory(time.Hour)
	mw := middleware.New(log.NewNop(), sessions, 0)
	h := New(log.NewNop(), uc)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r, sessions
}

func doSubmit(t *testing.T, r *gin.Engine, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitHandler(t *testing.T) {
	t.Run("Requires Session", func(t *testing.T) {
		r, _ := newTestRouter(t, &fakeUseCase{})
		w := doSubmit(t, r, "", `{"content":"!!Task Summary!!: X"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{out: task.SubmitOutput{
			Task:       &todoist.Task{ID: "t-1", URL: "https://todoist.com/showTask?id=t-1"},
			SubtaskIDs: []string{"t-2", "t-3"},
			Sections:   map[string]string{"Task Summary": "Call the lead"},
			Structured: model.Suggestion{TaskSummary: "Call the lead", Priority: 3},
		}}
		r, sessions := newTestRouter(t, uc)
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := doSubmit(t, r, sess.ID,
			`{"content":"!!Task Summary!!: Call the lead","project_id":"p-override"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":"t-1"`)
		assert.Contains(t, w.Body.String(), `"subtask_ids":["t-2","t-3"]`)
		assert.Equal(t, "p-override", uc.lastInput.ProjectID)
	})

	t.Run("Missing Content", func(t *testing.T) {
		r, sessions := newTestRouter(t, &fakeUseCase{})
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := doSubmit(t, r, sess.ID, `{"project_id":"p-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Domain Validation Error", func(t *testing.T) {
		uc := &fakeUseCase{err: task.ErrNoProjectSelected}
		r, sessions := newTestRouter(t, uc)
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := doSubmit(t, r, sess.ID, `{"content":"!!Task Summary!!: X"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no Todoist project selected")
	})

	t.Run("Rejected Todoist Token", func(t *testing.T) {
		uc := &fakeUseCase{err: &todoist.APIError{StatusCode: http.StatusForbidden, Detail: "forbidden"}}
		r, sessions := newTestRouter(t, uc)
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := doSubmit(t, r, sess.ID, `{"content":"!!Task Summary!!: X"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Upstream Failure Is Hidden", func(t *testing.T) {
		uc := &fakeUseCase{err: context.DeadlineExceeded}
		r, sessions := newTestRouter(t, uc)
		sess, err := sessions.Create(context.Background(), "alice", "US")
		require.NoError(t, err)

		w := doSubmit(t, r, sess.ID, `{"content":"!!Task Summary!!: X"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "failed to reach Todoist")
	})
}

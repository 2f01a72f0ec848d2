package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "voice-task-uploader/internal/auth/delivery/http"
	authUC "voice-task-uploader/internal/auth/usecase"
	dictationHTTP "voice-task-uploader/internal/dictation/delivery/http"
	dictationUC "voice-task-uploader/internal/dictation/usecase"
	"voice-task-uploader/internal/middleware"
	"voice-task-uploader/internal/task"
	taskHTTP "voice-task-uploader/internal/task/delivery/http"
	taskUC "voice-task-uploader/internal/task/usecase"
)

// setupAuthDomain wires login, logout, page data and language selection.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := authUC.New(srv.l, srv.accounts, srv.sessions, srv.todoist)
	h := authHTTP.New(srv.l, uc, authHTTP.CookieConfig{
		MaxAgeSeconds: srv.cookieMaxAge,
		Secure:        srv.cookieSecure,
	})
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}

// setupDictationDomain wires the audio upload and suggestion pipeline.
func (srv HTTPServer) setupDictationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := dictationUC.New(srv.l, srv.accounts, srv.transcriber, srv.llm, srv.todoist, srv.tempDir)
	h := dictationHTTP.New(srv.l, uc)
	dictationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dictation domain registered")
}

// setupTaskDomain wires the Todoist submission endpoint.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	var uc task.UseCase
	if srv.calendar != nil {
		uc = taskUC.New(srv.l, srv.accounts, srv.todoist, srv.calendar, srv.calendarID)
	} else {
		uc = taskUC.New(srv.l, srv.accounts, srv.todoist, nil, "")
	}

	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}

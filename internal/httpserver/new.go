package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-uploader/internal/account"
	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/gcalendar"
	"voice-task-uploader/pkg/llmprovider"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
	"voice-task-uploader/pkg/whisper"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared domain dependencies
	accounts    account.IStore
	sessions    session.IStore
	transcriber whisper.ITranscriber
	llm         *llmprovider.Manager
	todoist     todoist.ITodoist
	calendar    *gcalendar.Client
	calendarID  string

	// Behavior knobs
	tempDir         string
	cookieMaxAge    int
	cookieSecure    bool
	loginRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Accounts    account.IStore
	Sessions    session.IStore
	Transcriber whisper.ITranscriber
	LLM         *llmprovider.Manager
	Todoist     todoist.ITodoist

	// Calendar is optional; nil disables the calendar mirror.
	Calendar   *gcalendar.Client
	CalendarID string

	// TempDir is where uploaded clips are spooled; "" uses the system default.
	TempDir string

	CookieMaxAgeSeconds int
	CookieSecure        bool
	LoginRatePerMin     int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		accounts:        cfg.Accounts,
		sessions:        cfg.Sessions,
		transcriber:     cfg.Transcriber,
		llm:             cfg.LLM,
		todoist:         cfg.Todoist,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		tempDir:         cfg.TempDir,
		cookieMaxAge:    cfg.CookieMaxAgeSeconds,
		cookieSecure:    cfg.CookieSecure,
		loginRatePerMin: cfg.LoginRatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.accounts == nil {
		return errors.New("account store is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.transcriber == nil {
		return errors.New("transcriber is required")
	}
	if srv.todoist == nil {
		return errors.New("todoist client is required")
	}
	return nil
}

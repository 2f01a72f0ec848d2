package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"voice-task-uploader/config"
	_ "voice-task-uploader/docs" // Swagger docs
	"voice-task-uploader/internal/account"
	"voice-task-uploader/internal/httpserver"
	"voice-task-uploader/internal/session"
	"voice-task-uploader/pkg/encrypter"
	"voice-task-uploader/pkg/gcalendar"
	"voice-task-uploader/pkg/llmprovider"
	"voice-task-uploader/pkg/log"
	"voice-task-uploader/pkg/todoist"
	"voice-task-uploader/pkg/whisper"
)

// @title       Voice Task Uploader API
// @description Voice-to-task web service: record a clip, get a transcription and a structured task suggestion, submit it to Todoist.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Uploader...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Account store
	accounts, err := account.New(logger, encrypter.NewBcrypt(0), cfg.Accounts.File)
	if err != nil {
		logger.Errorf(ctx, "Failed to load accounts from %s: %v", cfg.Accounts.File, err)
		return
	}
	logger.Infof(ctx, "Loaded %d account(s) from %s", len(accounts.Usernames()), cfg.Accounts.File)

	// 4. Session store
	sessionTTL, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil || sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}

	var sessions session.IStore
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis at %s: %v", cfg.Session.RedisAddr, err)
			return
		}
		sessions = session.NewRedis(client, sessionTTL)
		logger.Infof(ctx, "Session backend: redis (%s)", cfg.Session.RedisAddr)
	default:
		sessions = session.NewMemory(sessionTTL)
		logger.Info(ctx, "Session backend: memory")
	}

	// 5. Vendor clients
	transcriber := whisper.New()

	todoistClient := todoist.New()
	if cfg.Todoist.BaseURL != "" {
		todoistClient = todoistClient.WithBaseURL(cfg.Todoist.BaseURL)
	}

	// 6. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotalTimeout = 60 * time.Second
	}

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 7. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Accounts:    accounts,
		Sessions:    sessions,
		Transcriber: transcriber,
		LLM:         llm,
		Todoist:     todoistClient,
		Calendar:    calendarClient,
		CalendarID:  cfg.GoogleCalendar.CalendarID,

		TempDir:             cfg.Upload.TempDir,
		CookieMaxAgeSeconds: cfg.Auth.CookieMaxAgeSeconds,
		CookieSecure:        cfg.Auth.CookieSecure,
		LoginRatePerMin:     cfg.Auth.LoginRatePerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

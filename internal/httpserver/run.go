package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may finish on stop.
const shutdownTimeout = 10 * time.Second

// Run maps all handlers and serves until ctx is cancelled, then shuts
// down gracefully.
func (srv HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("httpserver: failed to map handlers: %w", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown failed: %w", err)
	}
	return nil
}

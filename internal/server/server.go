package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/templui/taskboard/internal/app"
	"github.com/templui/taskboard/internal/config"
	"github.com/templui/taskboard/internal/logger"
	"github.com/templui/taskboard/internal/routes"
)

const shutdownTimeout = 10 * time.Second

// Start is the process entrypoint shared by cmd/server and `taskboard serve`:
// it loads config from the environment, installs the logger, opens the app
// and serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func Start(ctx context.Context) error {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer logger.Flush()

	slog.Info("config loaded", "config", cfg.Sanitized())

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return err
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = Run(ctx, app)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server failed", "error", err)
		return err
	}
	return nil
}

// New builds the HTTP server for app with the configured timeouts.
func New(app *app.App) *http.Server {
	return &http.Server{
		Addr:         ":" + app.Cfg.Port,
		Handler:      routes.SetupRoutes(app),
		ReadTimeout:  app.Cfg.ReadTimeout,
		WriteTimeout: app.Cfg.WriteTimeout,
		IdleTimeout:  app.Cfg.IdleTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, app *app.App) error {
	srv := New(app)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", app.Cfg.Port, "env", app.Cfg.AppEnv, "url", "http://localhost:"+app.Cfg.Port)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

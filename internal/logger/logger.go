package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Init builds the process logger and installs it as slog's default.
// Development: Text format with Debug level
// Production: JSON format with Info level
// Errors are also forwarded to Sentry when sentryDSN is set.
func Init(isDev bool, sentryDSN string) {
	handlers := []slog.Handler{NewHandler(os.Stdout, isDev)}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))
}

// NewHandler returns the stdout handler used for the given environment.
func NewHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

// Flush waits for buffered Sentry events. Safe to call when Sentry is disabled.
func Flush() {
	sentry.Flush(2 * time.Second)
}

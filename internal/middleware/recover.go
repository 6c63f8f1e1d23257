package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/templui/taskboard/internal/response"
)

// Recover turns a panic into a 500 envelope. The panic value and stack
// are logged, never sent to the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("panic recovered",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			response.Error(w, http.StatusInternalServerError, "Internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}

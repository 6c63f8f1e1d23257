package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/templui/taskboard/internal/ctxkeys"
	"github.com/templui/taskboard/internal/response"
	"github.com/templui/taskboard/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

var errInvalidBody = errors.New("Invalid JSON body")

// decodeJSON reads the request body into v. An empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errInvalidBody
}

// writeError maps service failures to status codes. Anything that is not a
// *service.Error is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		response.Error(w, statusFor(svcErr.Kind), svcErr.Message)
		return
	}

	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"user_id", ctxkeys.UserID(r.Context()),
	)
	response.Error(w, http.StatusInternalServerError, "Internal server error")
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, service.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(kind, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/service"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrValidation))
	assert.Equal(t, http.StatusUnauthorized, statusFor(service.ErrAuthentication))
	assert.Equal(t, http.StatusForbidden, statusFor(service.ErrForbidden))
	assert.Equal(t, http.StatusNotFound, statusFor(service.ErrNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(service.ErrConflict))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("other")))
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/boards/b1", nil)

	rec := httptest.NewRecorder()
	writeError(rec, req, &service.Error{Kind: service.ErrForbidden, Message: "Unauthorized access to this board"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized access to this board"}`, rec.Body.String())

	// wrapped service errors keep their kind
	rec = httptest.NewRecorder()
	wrapped := fmt.Errorf("outer: %w", &service.Error{Kind: service.ErrNotFound, Message: "Todo not found"})
	writeError(rec, req, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	writeError(rec, req, errors.New("pq: connection refused to 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var in model.BoardInput

	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"title":"Work"}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &in))
	assert.Equal(t, "Work", in.Title)

	in = model.BoardInput{}
	req = httptest.NewRequest(http.MethodPost, "/api/boards", http.NoBody)
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &in))
	assert.Empty(t, in.Title)

	req = httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"title":`))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &in), errInvalidBody)

	req = httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(`{"title":42}`))
	assert.ErrorIs(t, decodeJSON(httptest.NewRecorder(), req, &in), errInvalidBody)
}

func TestHealthAndNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Server is running"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
}

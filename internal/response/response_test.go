package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Board created successfully", map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Board created successfully","data":{"id":"b1"}}`, rec.Body.String())
}

func TestSuccess_OmitsEmptyMessageAndData(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, "Board deleted successfully", nil)
	assert.JSONEq(t, `{"success":true,"message":"Board deleted successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Success(rec, http.StatusOK, "", []int{})
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "Route not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
}

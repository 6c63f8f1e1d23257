package handler

import (
	"net/http"

	"github.com/templui/taskboard/internal/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotFound, "Route not found")
}

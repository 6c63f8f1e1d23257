// Package response writes the JSON envelope shared by every API response.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is {success, message?, data?}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

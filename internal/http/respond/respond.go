// Package respond writes the JSON envelopes the UI collaborator consumes:
// payloads on success, {"message": ...} on failure.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorMessage struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorMessage{Message: message})
}

// Internal logs the full error server-side and returns a generic message.
func Internal(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}

// Package http provides the HTTP handlers and routing for the coffee API.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope the client parses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{
		Success: false,
		Message: message,
		Code:    status,
	})
}

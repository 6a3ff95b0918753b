// Package handler contains the HTTP handlers for the blog API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/eyoab/tarikoch/internal/app"
)

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		handleBadResponse(err, payload)
	}
}

// writeError responds with an error message in the standard shape.
func writeError(w http.ResponseWriter, err error, statusCode int) {
	app.Logger().Error("Request error", "error", err, "status", statusCode)

	writeJSON(w, statusCode, map[string]string{"error": err.Error()})
}

func handleBadResponse(err error, resp any) {
	app.Logger().Error(
		"failed to encode a response",
		"error", err,
		"response", resp,
	)
}

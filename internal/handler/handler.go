// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pawhaven/pawhaven/internal/handler/dto"
)

// NotFound handles 404 responses for unmatched API routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "resource not found"})
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.MessageResponse{Message: "method not allowed"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// writeFailure writes a {"success":false,"message":...} error body.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.StatusResponse{Success: false, Message: message})
}

// writeMessage writes a bare {"message":...} error body, the shape the
// read endpoints use.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.MessageResponse{Message: message})
}

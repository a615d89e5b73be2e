// Package respond writes the JSON envelope shared by all widget endpoints:
// {"success": true, "data": ...} on success and
// {"success": false, "data": {"message": "..."}} on failure.
package respond

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Success writes a 200 envelope around data.
func Success(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Error writes a failure envelope with the given status and user-facing message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Data: errorBody{Message: message}})
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

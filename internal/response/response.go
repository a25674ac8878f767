// Package response provides shared JSON response helpers for HTTP handlers.
//
// Every body this API produces carries an "ok" flag: 1 with the operation's
// payload fields at the top level, or 0 with a single "e" error string.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	OK int    `json:"ok"`
	E  string `json:"e"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with the given payload. The payload struct is
// expected to carry its own `ok:1` field.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Err writes an error response with the given status and message.
func Err(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{OK: 0, E: message})
}

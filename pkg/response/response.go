// Package response writes Zephyr's wire format: raw JSON entities on
// success, plain-text bodies on error. The shapes (and the exact error
// strings the storefront matches on) are part of the contract with the
// browser client, so there is no JSON envelope here.
package response

import (
	"encoding/json"
	"net/http"
)

// statusMessage is the body for mutation endpoints (signup, logout, checkout).
type statusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSON sends a 200 response with data encoded as-is.
func JSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data) //nolint:errcheck
}

// Success sends a 200 {"status":"success","message":...} body.
func Success(w http.ResponseWriter, message string) {
	JSON(w, statusMessage{Status: "success", Message: message})
}

// Text sends a plain-text body with the given status code.
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message)) //nolint:errcheck
}

// Internal sends the legacy 500 body.
func Internal(w http.ResponseWriter) {
	Text(w, http.StatusInternalServerError, "Internal Server Error.")
}

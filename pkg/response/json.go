package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// exposeDetails controls whether server fault details reach the client.
var exposeDetails atomic.Bool

// ExposeErrorDetails turns on the details field of 500 responses (development only)
func ExposeErrorDetails(enabled bool) {
	exposeDetails.Store(enabled)
}

// ErrorBody is the standard failure payload
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessBody is the payload for operations that return nothing else
type SuccessBody struct {
	Success bool `json:"success"`
}

// JSON sends a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(data)
}

// OK sends {"success":true}
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, SuccessBody{Success: true})
}

// Error sends an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Success: false, Error: message})
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// InternalError sends a 500; err is only echoed when details are exposed
func InternalError(w http.ResponseWriter, message string, err error) {
	body := ErrorBody{Success: false, Error: message}
	if err != nil && exposeDetails.Load() {
		body.Details = err.Error()
	}
	JSON(w, http.StatusInternalServerError, body)
}

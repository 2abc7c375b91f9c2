package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents a standardized error response.
// Error carries the human-readable message; Raw and Details are diagnostics.
type ErrorResponse struct {
	Error   string  `json:"error"`
	Code    string  `json:"code,omitempty"`
	Raw     *string `json:"raw,omitempty"` // set whenever the reply is echoed back, even if empty
	Details string  `json:"details,omitempty"`
}

// Respond writes an arbitrary error body with the given status.
func Respond(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, code, message string) {
	Respond(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// RespondErrorWithDetails writes an error response with the underlying cause attached
func RespondErrorWithDetails(w http.ResponseWriter, status int, code, message, details string) {
	Respond(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// RespondErrorWithRaw writes an error response carrying the raw upstream text
func RespondErrorWithRaw(w http.ResponseWriter, status int, code, message, raw string) {
	Respond(w, status, ErrorResponse{
		Error: message,
		Code:  code,
		Raw:   &raw,
	})
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// RespondBadRequest writes a bad request error response
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

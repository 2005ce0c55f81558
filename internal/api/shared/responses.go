package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard single-message error body, e.g.
// {"error": "User not found"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body for rejected writes: the full
// ordered list of business-rule violations.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// RespondWithJSON writes data as a JSON response with the given status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"trace_id", GetTraceID(r.Context()))
	}
}

// RespondWithError writes a single-message JSON error response.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithValidationErrors writes a 400 carrying every failed check.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, messages []string) {
	slog.Debug("sending validation error response",
		"errors", messages,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: messages})
}

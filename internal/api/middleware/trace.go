// Package middleware provides the HTTP middleware used by the server:
// trace-ID propagation, structured request logging, and panic recovery.
package middleware

import (
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Apply it before any
// middleware that logs, so every log line in the request's lifetime
// carries the same ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

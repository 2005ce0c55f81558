package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/taskboard/taskboard-api/internal/api/shared"
)

// genericErrorMessage is the only detail a client ever sees for a
// panic; the real error and stack stay in the logs.
const genericErrorMessage = "An unexpected error occurred"

// Recovery converts panics into a logged 500 with a generic JSON body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.LogAttrs(r.Context(), slog.LevelError, "unhandled panic",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError, genericErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/store"
)

// newTestRouter wires the handlers against a real seeded store, the
// same way cmd/server does, minus middleware.
func newTestRouter(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()

	s := store.NewSeeded()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userHandler := NewUserHandler(s, logger)
	taskHandler := NewTaskHandler(s, logger)
	systemHandler := NewSystemHandler(s)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Post("/users", userHandler.Create)
		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Get("/stats", systemHandler.Stats)
	})
	r.Get("/health", systemHandler.Health)

	return r, s
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

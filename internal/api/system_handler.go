package api

import (
	"net/http"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SystemHandler serves the operational endpoints: stats, health, and
// the panic probe used to exercise the recovery middleware.
type SystemHandler struct {
	store *store.Store
}

// NewSystemHandler creates a SystemHandler backed by the shared store.
func NewSystemHandler(s *store.Store) *SystemHandler {
	return &SystemHandler{store: s}
}

// Stats handles GET /api/stats.
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.store.GetStats())
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "taskboard-api is running",
	})
}

// PanicProbe handles GET /api/test/unhandled-exception. It panics on
// purpose so the 500 path of the recovery middleware can be verified in
// a running deployment.
func (h *SystemHandler) PanicProbe(w http.ResponseWriter, r *http.Request) {
	panic("simulated unhandled exception")
}

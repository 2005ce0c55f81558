package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/store"
)

// UserHandler serves the /api/users endpoints.
type UserHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler backed by the shared store.
func NewUserHandler(s *store.Store, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: s, logger: logger}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.store.ListUsers()
	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users, Count: len(users)})
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		HandleStoreError(w, r, err, "User not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Role)
	if err != nil {
		HandleStoreError(w, r, err, "User not found")
		return
	}

	h.logger.Info("user created", "user_id", user.ID, "role", user.Role)

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

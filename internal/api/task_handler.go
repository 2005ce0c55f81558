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

// TaskHandler serves the /api/tasks endpoints.
type TaskHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTaskHandler creates a TaskHandler backed by the shared store.
func NewTaskHandler(s *store.Store, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{store: s, logger: logger}
}

// List handles GET /api/tasks?status=&userId=. Filter semantics live in
// the store: blank or unparsable filters are ignored.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.ListTasks(r.URL.Query().Get("status"), r.URL.Query().Get("userId"))
	shared.RespondWithJSON(w, r, http.StatusOK, TasksResponse{Tasks: tasks, Count: len(tasks)})
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.store.CreateTask(req.Title, req.Status, req.UserID)
	if err != nil {
		HandleStoreError(w, r, err, "Task not found")
		return
	}

	h.logger.Info("task created", "task_id", task.ID, "status", task.Status, "user_id", task.UserID)

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}. Absent body fields keep their
// previous values; an unknown ID yields a 404, while rule violations on
// provided fields yield a 400.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, fmt.Sprintf("Task with id %s not found", chi.URLParam(r, "id")))
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.store.UpdateTask(id, req.Title, req.Status, req.UserID)
	if err != nil {
		HandleStoreError(w, r, err, fmt.Sprintf("Task with id %d not found", id))
		return
	}

	h.logger.Info("task updated", "task_id", task.ID, "status", task.Status)

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

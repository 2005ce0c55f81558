package api

import "github.com/taskboard/taskboard-api/internal/domain"

// CreateUserRequest is the body for POST /api/users. Field rules are
// enforced by the store's validation pass, not struct tags, so the
// response can carry every failed check at once.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateTaskRequest is the body for POST /api/tasks.
type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
	UserID int    `json:"userId"`
}

// UpdateTaskRequest is the body for PUT /api/tasks/{id}. Nil pointers
// mark absent fields; the store leaves those values unchanged.
type UpdateTaskRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
	UserID *int    `json:"userId"`
}

// UsersResponse is the body for GET /api/users.
type UsersResponse struct {
	Users []domain.User `json:"users"`
	Count int           `json:"count"`
}

// TasksResponse is the body for GET /api/tasks.
type TasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Count int           `json:"count"`
}

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

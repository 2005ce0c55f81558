package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
)

func TestListTasks(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("no filters", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TasksResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 3, resp.Count)
	})

	t.Run("status filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/tasks?status=completed", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TasksResponse
		decodeBody(t, w, &resp)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, domain.StatusCompleted, resp.Tasks[0].Status)
	})

	t.Run("user filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/tasks?userId=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TasksResponse
		decodeBody(t, w, &resp)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, 2, resp.Tasks[0].UserID)
	})

	t.Run("unparsable user filter ignored", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/tasks?userId=abc", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TasksResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 3, resp.Count)
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("valid task", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
			"title":  "T",
			"status": "pending",
			"userId": 1,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/tasks/4", w.Header().Get("Location"))

		var task domain.Task
		decodeBody(t, w, &task)
		assert.Equal(t, 4, task.ID)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{
			"title":  "T",
			"status": "pending",
			"userId": 42,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string][]string
		decodeBody(t, w, &resp)
		assert.Equal(t, []string{"User not found"}, resp["errors"])
	})

	t.Run("missing fields reported together", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string][]string
		decodeBody(t, w, &resp)
		assert.Equal(t, []string{"Title is required", "Status is required", "UserId is required"}, resp["errors"])
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("status only keeps other fields", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPut, "/api/tasks/1", map[string]interface{}{
			"status": "completed",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var task domain.Task
		decodeBody(t, w, &task)
		assert.Equal(t, domain.StatusCompleted, task.Status)
		assert.Equal(t, "Implement authentication", task.Title)
		assert.Equal(t, 1, task.UserID)
	})

	t.Run("unknown id yields 404 with id in message", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPut, "/api/tasks/42", map[string]interface{}{
			"status": "completed",
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]string
		decodeBody(t, w, &resp)
		assert.Equal(t, "Task with id 42 not found", resp["error"])
	})

	t.Run("invalid status yields 400, not 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPut, "/api/tasks/42", map[string]interface{}{
			"status": "archived",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body leaves task unchanged", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(t, router, http.MethodPut, "/api/tasks/1", map[string]interface{}{})
		require.Equal(t, http.StatusOK, w.Code)

		var task domain.Task
		decodeBody(t, w, &task)
		assert.Equal(t, domain.Task{
			ID: 1, Title: "Implement authentication", Status: domain.StatusPending, UserID: 1,
		}, task)
	})
}

// Package store implements the in-memory data store for users and
// tasks. A single Store instance is created at process start and shared
// by every request handler; both collections live behind one
// sync.RWMutex so reads that span them (statistics) always observe a
// consistent pair.
package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/validation"
)

// Store owns the user and task collections. All access goes through its
// methods; read operations return snapshot copies, never references
// into the live slices.
type Store struct {
	mu    sync.RWMutex
	users []domain.User
	tasks []domain.Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store pre-populated with the default demo data:
// three users and three tasks, one per status.
func NewSeeded() *Store {
	return &Store{
		users: []domain.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: domain.RoleDeveloper},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleDesigner},
			{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: domain.RoleManager},
		},
		tasks: []domain.Task{
			{ID: 1, Title: "Implement authentication", Status: domain.StatusPending, UserID: 1},
			{ID: 2, Title: "Design user interface", Status: domain.StatusInProgress, UserID: 2},
			{ID: 3, Title: "Review code changes", Status: domain.StatusCompleted, UserID: 3},
		},
	}
}

// ListUsers returns a snapshot of all users in insertion order.
func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users
}

// GetUserByID returns the user with the given ID, or ErrUserNotFound.
func (s *Store) GetUserByID(id int) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

// UserExists reports whether a user with the given ID is present.
// Safe for use as a validation.UserExists predicate from the request
// layer; write paths use the unlocked variant inside their own
// critical section instead.
func (s *Store) UserExists(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userExistsLocked(id)
}

// userExistsLocked must be called with the mutex held (read or write).
func (s *Store) userExistsLocked(id int) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// ListTasks returns a snapshot of tasks matching the given filters, in
// insertion order. A blank status filter is ignored; a blank or
// unparsable userID filter is ignored as well, so "?userId=abc" behaves
// like no filter at all.
func (s *Store) ListTasks(statusFilter, userIDFilter string) []domain.Task {
	filterByUser := false
	var userID int
	if strings.TrimSpace(userIDFilter) != "" {
		if id, err := strconv.Atoi(strings.TrimSpace(userIDFilter)); err == nil {
			filterByUser = true
			userID = id
		}
	}
	filterByStatus := strings.TrimSpace(statusFilter) != ""

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filterByStatus && t.Status != statusFilter {
			continue
		}
		if filterByUser && t.UserID != userID {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// GetStats computes collection counts in a single scan under one read
// lock, so user and task totals are mutually consistent.
func (s *Store) GetStats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{
		Users: domain.UserStats{Total: len(s.users)},
		Tasks: domain.TaskStats{Total: len(s.tasks)},
	}
	for _, t := range s.tasks {
		switch t.Status {
		case domain.StatusPending:
			stats.Tasks.Pending++
		case domain.StatusInProgress:
			stats.Tasks.InProgress++
		case domain.StatusCompleted:
			stats.Tasks.Completed++
		}
	}
	return stats
}

// CreateUser validates and appends a new user, assigning the next ID.
// On rule violations it returns a *ValidationError carrying every
// failed check; nothing is written in that case.
func (s *Store) CreateUser(name, email, role string) (domain.User, error) {
	if result := validation.CreateUser(name, email, role); !result.Valid() {
		return domain.User{}, NewValidationError(result.Errors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:    nextID(userIDs(s.users)),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  strings.TrimSpace(role),
	}
	s.users = append(s.users, user)
	return user, nil
}

// CreateTask validates and appends a new task. The user-existence check
// runs inside the write critical section, so the referenced user cannot
// disappear between validation and insert.
func (s *Store) CreateTask(title, status string, userID int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := validation.CreateTask(title, status, userID, s.userExistsLocked)
	if !result.Valid() {
		return domain.Task{}, NewValidationError(result.Errors)
	}

	task := domain.Task{
		ID:     nextID(taskIDs(s.tasks)),
		Title:  strings.TrimSpace(title),
		Status: status,
		UserID: userID,
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// UpdateTask applies a partial update to the task with the given ID.
// Nil fields keep their previous values; a provided title is applied
// after trimming, including when it trims to empty. Returns
// ErrTaskNotFound when the ID does not exist, which is a distinct
// outcome from a *ValidationError.
func (s *Store) UpdateTask(id int, title, status *string, userID *int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := validation.UpdateTask(title, status, userID, s.userExistsLocked)
	if !result.Valid() {
		return domain.Task{}, NewValidationError(result.Errors)
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if title != nil {
			s.tasks[i].Title = strings.TrimSpace(*title)
		}
		if status != nil {
			s.tasks[i].Status = *status
		}
		if userID != nil {
			s.tasks[i].UserID = *userID
		}
		return s.tasks[i], nil
	}
	return domain.Task{}, ErrTaskNotFound
}

// nextID derives the next identifier from the collection contents:
// one plus the maximum existing ID, or 1 when empty. IDs are a derived
// property rather than a stored counter, so they can never drift from
// the actual records; reuse is impossible only because no delete
// operation exists.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func userIDs(users []domain.User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func taskIDs(tasks []domain.Task) []int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

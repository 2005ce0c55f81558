package domain

// Task represents a unit of work assigned to a user. Title, status and
// the owning user are mutable through partial updates; the ID is not.
// UserID always references a user present in the store at the time the
// task was written.
type Task struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	UserID int    `json:"userId"`
}

// Statuses a task moves through.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ValidStatuses lists all accepted task statuses in the order they are
// reported in validation messages.
var ValidStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

// IsValidStatus reports whether status is one of ValidStatuses.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if status == s {
			return true
		}
	}
	return false
}

package domain

// UserStats summarizes the user collection.
type UserStats struct {
	Total int `json:"total"`
}

// TaskStats summarizes the task collection, broken down by status.
type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Stats is the aggregate view returned by GET /api/stats. Both sections
// are computed in one pass under a single read lock so the counts are
// mutually consistent.
type Stats struct {
	Users UserStats `json:"users"`
	Tasks TaskStats `json:"tasks"`
}

// Package validation holds the stateless business-rule checks for users
// and tasks. Every function runs all applicable checks and returns the
// failures in field order, so callers can surface the complete list in
// one response instead of stopping at the first error.
//
// Referential checks are expressed through an injected UserExists
// predicate rather than a store reference, so the same functions work
// both from HTTP handlers and from inside the store's write path.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// UserExists reports whether a user with the given ID is present.
type UserExists func(id int) bool

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Result is the outcome of a validation pass: either valid, or a
// non-empty ordered list of human-readable error messages.
type Result struct {
	Errors []string
}

// Valid reports whether the validation pass found no errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func ok() Result {
	return Result{}
}

func fail(errors []string) Result {
	return Result{Errors: errors}
}

// CreateUser validates the fields required to create a user.
func CreateUser(name, email, role string) Result {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required")
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Invalid email format")
	}

	if strings.TrimSpace(role) == "" {
		errs = append(errs, "Role is required")
	} else if !domain.IsValidRole(role) {
		errs = append(errs, fmt.Sprintf("Role must be one of: %s", strings.Join(domain.ValidRoles, ", ")))
	}

	if len(errs) > 0 {
		return fail(errs)
	}
	return ok()
}

// CreateTask validates the fields required to create a task. The
// userExists predicate is consulted only when userID is positive, so a
// missing ID reads as "UserId is required" rather than "User not found".
func CreateTask(title, status string, userID int, userExists UserExists) Result {
	var errs []string

	if strings.TrimSpace(title) == "" {
		errs = append(errs, "Title is required")
	}

	if strings.TrimSpace(status) == "" {
		errs = append(errs, "Status is required")
	} else if !domain.IsValidStatus(status) {
		errs = append(errs, fmt.Sprintf("Status must be one of: %s", strings.Join(domain.ValidStatuses, ", ")))
	}

	if userID <= 0 {
		errs = append(errs, "UserId is required")
	} else if !userExists(userID) {
		errs = append(errs, "User not found")
	}

	if len(errs) > 0 {
		return fail(errs)
	}
	return ok()
}

// UpdateTask validates the optional fields of a partial task update.
// Nil fields are absent and skip their checks entirely. A provided
// title has no rule of its own beyond being applied by the store.
func UpdateTask(title, status *string, userID *int, userExists UserExists) Result {
	var errs []string

	if status != nil && !domain.IsValidStatus(*status) {
		errs = append(errs, fmt.Sprintf("Status must be one of: %s", strings.Join(domain.ValidStatuses, ", ")))
	}

	if userID != nil && !userExists(*userID) {
		errs = append(errs, "User not found")
	}

	if len(errs) > 0 {
		return fail(errs)
	}
	return ok()
}

package domain

// User represents a registered member of the taskboard.
// Users are immutable once created: there is no update or delete
// operation, so a user ID can never be reassigned.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Roles a user may hold.
const (
	RoleDeveloper = "developer"
	RoleDesigner  = "designer"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
)

// ValidRoles lists all accepted user roles in the order they are
// reported in validation messages.
var ValidRoles = []string{RoleDeveloper, RoleDesigner, RoleManager, RoleAdmin}

// IsValidRole reports whether role is one of ValidRoles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}

package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // HR manager - can configure offices
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	CompanyID    *string
	Email        string
	PasswordHash *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID *string
}

// IsManager checks if user is manager or owner
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleOwner
}

// ParseRole converts a claim value into a known Role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleOwner, RoleManager, RoleEmployee:
		return r, true
	default:
		return "", false
	}
}

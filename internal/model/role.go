package model

import "strings"

// Role is the access tier assigned to a user.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "admin"
)

// ParseRole normalizes a stored or submitted role string into a Role.
// Comparison is case-insensitive because earlier data mixed 'HR' and 'hr'.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee":
		return RoleEmployee, true
	case "hr":
		return RoleHR, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

// Is reports whether r names the same tier as other, ignoring case.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

func (r Role) String() string {
	return string(r)
}

package models

import "fmt"

// Role is the kind of account a registrant asks for
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// RoleID is the numeric role identifier shared by the auth service metadata and the users table
type RoleID int

const (
	RoleIDStaff   RoleID = 2
	RoleIDStudent RoleID = 3
)

// ParseRole converts a form value into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// ID returns the numeric identifier for the role
func (r Role) ID() RoleID {
	if r == RoleStudent {
		return RoleIDStudent
	}
	return RoleIDStaff
}

// RequiresStudentID reports whether registrations with this role must carry a student ID
func (r Role) RequiresStudentID() bool {
	return r == RoleStudent
}

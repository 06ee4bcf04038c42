package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser    Role = "user"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleFaculty, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role carries booking-arbitration authority.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleFaculty
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

package user

import "github.com/google/uuid"

// Actor is the authenticated identity attempting an operation. It is always
// passed explicitly into lifecycle and authorization calls; the core never
// reads the current user from ambient state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

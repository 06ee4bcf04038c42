//go:build unit

package booking_test

import (
	"testing"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	ownerID := uuid.New()

	owner := func(role user.Role) user.Actor { return user.NewActor(ownerID, role) }
	other := func(role user.Role) user.Actor { return user.NewActor(uuid.New(), role) }

	tests := []struct {
		name   string
		actor  user.Actor
		target booking.Status
		want   bool
	}{
		// approve / reject: staff only
		{"admin approves", other(user.RoleAdmin), booking.StatusApproved, true},
		{"faculty approves", other(user.RoleFaculty), booking.StatusApproved, true},
		{"user cannot approve", other(user.RoleUser), booking.StatusApproved, false},
		{"owner cannot approve own booking", owner(user.RoleUser), booking.StatusApproved, false},
		{"admin rejects", other(user.RoleAdmin), booking.StatusRejected, true},
		{"faculty rejects", other(user.RoleFaculty), booking.StatusRejected, true},
		{"user cannot reject", other(user.RoleUser), booking.StatusRejected, false},

		// complete: staff or owner
		{"admin completes", other(user.RoleAdmin), booking.StatusCompleted, true},
		{"faculty completes", other(user.RoleFaculty), booking.StatusCompleted, true},
		{"owner completes own booking", owner(user.RoleUser), booking.StatusCompleted, true},
		{"user cannot complete another's booking", other(user.RoleUser), booking.StatusCompleted, false},

		// cancel: admin or owner
		{"admin cancels", other(user.RoleAdmin), booking.StatusCancelled, true},
		{"owner cancels own booking", owner(user.RoleUser), booking.StatusCancelled, true},
		{"owner cancels own booking as faculty", owner(user.RoleFaculty), booking.StatusCancelled, true},
		{"faculty cannot cancel another's booking", other(user.RoleFaculty), booking.StatusCancelled, false},
		{"user cannot cancel another's booking", other(user.RoleUser), booking.StatusCancelled, false},

		// pending is never a transition target
		{"nobody transitions to pending", other(user.RoleAdmin), booking.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.CanTransition(tt.actor, ownerID, tt.target))
		})
	}
}

func TestCanView(t *testing.T) {
	ownerID := uuid.New()

	assert.True(t, booking.CanView(user.NewActor(uuid.New(), user.RoleAdmin), ownerID))
	assert.True(t, booking.CanView(user.NewActor(uuid.New(), user.RoleFaculty), ownerID))
	assert.True(t, booking.CanView(user.NewActor(ownerID, user.RoleUser), ownerID))
	assert.False(t, booking.CanView(user.NewActor(uuid.New(), user.RoleUser), ownerID))
}

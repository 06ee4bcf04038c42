package booking

import (
	"facility-booking/internal/domain/user"

	"github.com/google/uuid"
)

// CanTransition is the authorization policy for lifecycle transitions,
// expressed as a single decision function over (role, target, ownership) so
// the permission matrix stays auditable in one place:
//
//	approve/reject: admin or faculty; ownership irrelevant
//	complete:       admin or faculty, or the booking's owner
//	cancel:         admin, or the booking's owner regardless of role
//
// Edge legality (whether the target is reachable from the current status) is
// the entity's concern, not the policy's.
func CanTransition(actor user.Actor, ownerID uuid.UUID, target Status) bool {
	switch target {
	case StatusApproved, StatusRejected:
		return actor.IsStaff()
	case StatusCompleted:
		return actor.IsStaff() || actor.ID == ownerID
	case StatusCancelled:
		return actor.IsAdmin() || actor.ID == ownerID
	default:
		return false
	}
}

// CanView reports whether the actor may read a booking. Non-staff actors are
// restricted to their own bookings; for listings this is applied as a filter
// before results are returned rather than as a per-record failure.
func CanView(actor user.Actor, ownerID uuid.UUID) bool {
	return actor.IsStaff() || actor.ID == ownerID
}

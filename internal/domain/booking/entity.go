package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPurpose      = errors.New("booking purpose must not be empty")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	userID     uuid.UUID
	slotID     uuid.UUID
	date       Date
	purpose    string
	status     Status
	createdAt  time.Time

	approvedBy      *uuid.UUID
	approvedAt      *time.Time
	rejectedBy      *uuid.UUID
	rejectedAt      *time.Time
	rejectionReason *string
	cancelledAt     *time.Time
}

// NewBooking creates a pending booking request. Conflict and resource
// availability checks belong to the usecase layer; the entity only enforces
// its own invariants.
func NewBooking(resourceID, userID, slotID uuid.UUID, date Date, purpose string, now time.Time) (*Booking, error) {
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		userID:     userID,
		slotID:     slotID,
		date:       date,
		purpose:    purpose,
		status:     StatusPending,
		createdAt:  now,
	}, nil
}

func ReconstructBooking(
	id, resourceID, userID, slotID uuid.UUID,
	date Date,
	purpose string,
	status Status,
	createdAt time.Time,
	approvedBy *uuid.UUID, approvedAt *time.Time,
	rejectedBy *uuid.UUID, rejectedAt *time.Time, rejectionReason *string,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:              id,
		resourceID:      resourceID,
		userID:          userID,
		slotID:          slotID,
		date:            date,
		purpose:         purpose,
		status:          status,
		createdAt:       createdAt,
		approvedBy:      approvedBy,
		approvedAt:      approvedAt,
		rejectedBy:      rejectedBy,
		rejectedAt:      rejectedAt,
		rejectionReason: rejectionReason,
		cancelledAt:     cancelledAt,
	}
}

// Transition moves the booking along one state-machine edge and stamps the
// audit fields for that edge. Authorization is the policy's concern; the
// entity only guards edge legality.
func (b *Booking) Transition(target Status, actorID uuid.UUID, now time.Time, reason *string) error {
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	switch target {
	case StatusApproved:
		b.approvedBy = &actorID
		b.approvedAt = &now
	case StatusRejected:
		b.rejectedBy = &actorID
		b.rejectedAt = &now
		// Reason is stored as given, even when empty.
		b.rejectionReason = reason
	case StatusCancelled:
		b.cancelledAt = &now
	case StatusCompleted:
		// Status change only; the usage record carries completion details.
	default:
		return ErrInvalidTransition
	}

	b.status = target
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) ResourceID() uuid.UUID    { return b.resourceID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) SlotID() uuid.UUID        { return b.slotID }
func (b *Booking) Date() Date               { return b.date }
func (b *Booking) Purpose() string          { return b.purpose }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) ApprovedBy() *uuid.UUID   { return b.approvedBy }
func (b *Booking) ApprovedAt() *time.Time   { return b.approvedAt }
func (b *Booking) RejectedBy() *uuid.UUID   { return b.rejectedBy }
func (b *Booking) RejectedAt() *time.Time   { return b.rejectedAt }
func (b *Booking) RejectionReason() *string { return b.rejectionReason }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }

package shared

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/slot"
	"facility-booking/internal/domain/usage"

	"github.com/google/uuid"
)

// UnitOfWork runs write operations inside a single database transaction so
// check-then-insert sequences commit or roll back as one unit. Within retries
// on serialization failures; the callback must therefore be idempotent up to
// its own writes.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Resources() ResourceRepository
	Usage() UsageRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// FindForUpdate loads a booking with a row lock so concurrent transitions
	// serialize on it.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists a transition guarded by the expected prior status;
	// a concurrent transition that got there first surfaces as a conflict.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
	// HasBlocking reports whether a booking in a blocking status already
	// occupies (resourceID, date, slotID).
	HasBlocking(ctx context.Context, resourceID uuid.UUID, date booking.Date, slotID uuid.UUID) (bool, error)
	// AnyInStatuses reports whether the resource has bookings in any of the
	// given statuses (resource deletion guard).
	AnyInStatuses(ctx context.Context, resourceID uuid.UUID, statuses []booking.Status) (bool, error)
}

type SlotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*slot.TimeSlot, error)
	// FindByWindow looks up a slot by its exact (start, end) window,
	// regardless of the active flag.
	FindByWindow(ctx context.Context, start, end slot.TimeOfDay) (*slot.TimeSlot, error)
	Create(ctx context.Context, s *slot.TimeSlot) error
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Create(ctx context.Context, r *resource.Resource) error
	Update(ctx context.Context, r *resource.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UsageRepository interface {
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	Create(ctx context.Context, rec *usage.Record) error
}

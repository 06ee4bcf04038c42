//go:build unit

package builder

import (
	"time"

	dombooking "facility-booking/internal/domain/booking"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ResourceID uuid.UUID
	UserID     uuid.UUID
	SlotID     uuid.UUID
	Date       dombooking.Date
	Purpose    string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ResourceID: uuid.New(),
		UserID:     uuid.New(),
		SlotID:     uuid.New(),
		Date:       dombooking.NewDate(2026, time.September, 14),
		Purpose:    "Robotics club meeting",
		CreatedAt:  time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ResourceID, b.UserID, b.SlotID, b.Date, b.Purpose, b.CreatedAt)
}

// BuildInStatus reconstructs a stored booking already moved to the given
// status, without replaying transitions.
func (b *BookingBuilder) BuildInStatus(status dombooking.Status) *dombooking.Booking {
	return dombooking.ReconstructBooking(
		uuid.New(), b.ResourceID, b.UserID, b.SlotID, b.Date, b.Purpose,
		status, b.CreatedAt,
		nil, nil, nil, nil, nil, nil,
	)
}

func (b *BookingBuilder) BuildView(status dombooking.Status) *queries.BookingView {
	return &queries.BookingView{
		ID:               uuid.New(),
		ResourceID:       b.ResourceID,
		ResourceName:     "Chemistry Lab",
		ResourceLocation: "Building C, Floor 2",
		UserID:           b.UserID,
		SlotID:           b.SlotID,
		SlotLabel:        "Morning Session 1",
		SlotStart:        "08:00",
		SlotEnd:          "10:00",
		Date:             b.Date,
		Purpose:          b.Purpose,
		Status:           status.String(),
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) WithResourceID(id uuid.UUID) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithDate(d dombooking.Date) *BookingBuilder {
	b.Date = d
	return b
}

func (b *BookingBuilder) WithPurpose(p string) *BookingBuilder {
	b.Purpose = p
	return b
}

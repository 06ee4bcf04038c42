package queries

import (
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"

	"github.com/google/uuid"
)

// Read models (DTO for the read side)

type BookingView struct {
	ID               uuid.UUID    `json:"id"`
	ResourceID       uuid.UUID    `json:"resource_id"`
	ResourceName     string       `json:"resource_name"`
	ResourceLocation string       `json:"resource_location"`
	UserID           uuid.UUID    `json:"user_id"`
	SlotID           uuid.UUID    `json:"slot_id"`
	SlotLabel        string       `json:"slot_label"`
	SlotStart        string       `json:"slot_start"`
	SlotEnd          string       `json:"slot_end"`
	Date             booking.Date `json:"date"`
	Purpose          string       `json:"purpose"`
	Status           string       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	ApprovedBy       *uuid.UUID   `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time   `json:"approved_at,omitempty"`
	RejectedBy       *uuid.UUID   `json:"rejected_by,omitempty"`
	RejectedAt       *time.Time   `json:"rejected_at,omitempty"`
	RejectionReason  *string      `json:"rejection_reason,omitempty"`
	CancelledAt      *time.Time   `json:"cancelled_at,omitempty"`
	HasUsageRecord   bool         `json:"has_usage_record"`
}

type SlotView struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Active bool      `json:"active"`
}

// SlotAvailability is one row of the availability grid for a resource/date.
type SlotAvailability struct {
	SlotID    uuid.UUID `json:"slot_id"`
	Label     string    `json:"label"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Available bool      `json:"available"`
}

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Capacity    int       `json:"capacity"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingFilter narrows booking listings; nil fields are not applied. The
// query layer further narrows by actor role before hitting the store.
type BookingFilter struct {
	UserID     *uuid.UUID
	ResourceID *uuid.UUID
	Status     *booking.Status
	Date       *booking.Date
	DateFrom   *booking.Date
	DateTo     *booking.Date
}

type ResourceFilter struct {
	Category *string
	Status   *resource.Status
	Search   *string
}

package response

import (
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	ResourceID       uuid.UUID  `json:"resourceId"`
	ResourceName     string     `json:"resourceName"`
	ResourceLocation string     `json:"resourceLocation"`
	UserID           uuid.UUID  `json:"userId"`
	SlotID           uuid.UUID  `json:"slotId"`
	SlotLabel        string     `json:"slotLabel"`
	SlotStart        string     `json:"slotStart"`
	SlotEnd          string     `json:"slotEnd"`
	Date             string     `json:"date"`
	Purpose          string     `json:"purpose"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	ApprovedBy       *uuid.UUID `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	RejectedBy       *uuid.UUID `json:"rejectedBy,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason  *string    `json:"rejectionReason,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	HasUsageRecord   bool       `json:"hasUsageRecord"`
}

type SlotAvailabilityResponse struct {
	SlotID    uuid.UUID `json:"slotId"`
	Label     string    `json:"label"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Available bool      `json:"available"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID,
		ResourceID:       v.ResourceID,
		ResourceName:     v.ResourceName,
		ResourceLocation: v.ResourceLocation,
		UserID:           v.UserID,
		SlotID:           v.SlotID,
		SlotLabel:        v.SlotLabel,
		SlotStart:        v.SlotStart,
		SlotEnd:          v.SlotEnd,
		Date:             v.Date.String(),
		Purpose:          v.Purpose,
		Status:           v.Status,
		CreatedAt:        v.CreatedAt,
		ApprovedBy:       v.ApprovedBy,
		ApprovedAt:       v.ApprovedAt,
		RejectedBy:       v.RejectedBy,
		RejectedAt:       v.RejectedAt,
		RejectionReason:  v.RejectionReason,
		CancelledAt:      v.CancelledAt,
		HasUsageRecord:   v.HasUsageRecord,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromAvailability(date booking.Date, grid []*queries.SlotAvailability) map[string]any {
	items := make([]*SlotAvailabilityResponse, len(grid))
	for i, g := range grid {
		items[i] = &SlotAvailabilityResponse{
			SlotID:    g.SlotID,
			Label:     g.Label,
			Start:     g.Start,
			End:       g.End,
			Available: g.Available,
		}
	}
	return map[string]any{
		"date":  date.String(),
		"slots": items,
	}
}

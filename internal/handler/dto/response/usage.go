package response

import (
	"time"

	"facility-booking/internal/domain/usage"

	"github.com/google/uuid"
)

type UsageRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"bookingId"`
	UploadedBy uuid.UUID `json:"uploadedBy"`
	Remarks    string    `json:"remarks"`
	Issues     *string   `json:"issues,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromUsageRecord(rec *usage.Record) *UsageRecordResponse {
	return &UsageRecordResponse{
		ID:         rec.ID(),
		BookingID:  rec.BookingID(),
		UploadedBy: rec.UploadedBy(),
		Remarks:    rec.Remarks(),
		Issues:     rec.Issues(),
		CreatedAt:  rec.CreatedAt(),
	}
}

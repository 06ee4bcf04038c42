package request

import (
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type AttachUsageRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Remarks   string    `json:"remarks" binding:"required,max=1000"`
	Issues    *string   `json:"issues" binding:"omitempty,max=1000"`
}

func (r *AttachUsageRequest) ToInput() commands.AttachUsageInput {
	return commands.AttachUsageInput{
		BookingID: r.BookingID,
		Remarks:   r.Remarks,
		Issues:    r.Issues,
	}
}

package request

import (
	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/slot"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomSlotRequest struct {
	Label string `json:"label" binding:"required,max=100"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateBookingRequest struct {
	ResourceID uuid.UUID          `json:"resource_id" binding:"required"`
	Date       string             `json:"date" binding:"required"`
	SlotID     *uuid.UUID         `json:"slot_id"`
	CustomSlot *CustomSlotRequest `json:"custom_slot"`
	Purpose    string             `json:"purpose" binding:"required,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	input := commands.CreateBookingInput{
		ResourceID: r.ResourceID,
		Date:       date,
		SlotID:     r.SlotID,
		Purpose:    r.Purpose,
	}

	if r.CustomSlot != nil {
		start, err := slot.NewTimeOfDay(r.CustomSlot.Start)
		if err != nil {
			return commands.CreateBookingInput{}, err
		}
		end, err := slot.NewTimeOfDay(r.CustomSlot.End)
		if err != nil {
			return commands.CreateBookingInput{}, err
		}
		input.CustomSlot = &commands.CustomSlotSpec{
			Label: r.CustomSlot.Label,
			Start: start,
			End:   end,
		}
	}

	return input, nil
}

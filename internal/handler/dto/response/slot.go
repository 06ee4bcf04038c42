package response

import (
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	Start string    `json:"start"`
	End   string    `json:"end"`
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = &SlotResponse{
			ID:    v.ID,
			Label: v.Label,
			Start: v.Start,
			End:   v.End,
		}
	}
	return out
}

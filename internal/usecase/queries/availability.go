package queries

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrResourceNotFound = errs.New("resource not found")

type SlotReadStore interface {
	// ListActive returns active slots ordered by start time.
	ListActive(ctx context.Context) ([]*SlotView, error)
}

type AvailabilityReadStore interface {
	// BlockedSlotIDs returns the slot ids occupied by a blocking booking for
	// the resource on the date.
	BlockedSlotIDs(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]uuid.UUID, error)
}

type AvailabilityQueries interface {
	ListForDate(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]*SlotAvailability, error)
}

type availabilityQueriesImpl struct {
	slots        SlotReadStore
	availability AvailabilityReadStore
	resources    ResourceReadStore
}

func NewAvailabilityQueries(slots SlotReadStore, availability AvailabilityReadStore, resources ResourceReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{slots: slots, availability: availability, resources: resources}
}

// ListForDate derives the availability grid: every active slot, marked
// unavailable when a blocking booking occupies it. Custom (inactive) slots
// never appear here even though they are bookable by id.
func (q *availabilityQueriesImpl) ListForDate(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]*SlotAvailability, error) {
	if _, err := q.resources.FindViewByID(ctx, resourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	slots, err := q.slots.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	blockedIDs, err := q.availability.BlockedSlotIDs(ctx, resourceID, date)
	if err != nil {
		return nil, err
	}
	blocked := make(map[uuid.UUID]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	grid := make([]*SlotAvailability, len(slots))
	for i, s := range slots {
		_, occupied := blocked[s.ID]
		grid[i] = &SlotAvailability{
			SlotID:    s.ID,
			Label:     s.Label,
			Start:     s.Start,
			End:       s.End,
			Available: !occupied,
		}
	}
	return grid, nil
}

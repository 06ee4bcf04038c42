package queries

import "context"

type SlotQueries interface {
	// ListActive returns the preset slot grid, ordered by start time. Custom
	// slots never appear here.
	ListActive(ctx context.Context) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) ListActive(ctx context.Context) ([]*SlotView, error) {
	return q.store.ListActive(ctx)
}

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotReadStore struct {
	slots []*queries.SlotView
}

func (s *fakeSlotReadStore) ListActive(_ context.Context) ([]*queries.SlotView, error) {
	return s.slots, nil
}

type fakeAvailabilityReadStore struct {
	blocked []uuid.UUID
}

func (s *fakeAvailabilityReadStore) BlockedSlotIDs(_ context.Context, _ uuid.UUID, _ booking.Date) ([]uuid.UUID, error) {
	return s.blocked, nil
}

type fakeResourceReadStore struct {
	views map[uuid.UUID]*queries.ResourceView
}

func (s *fakeResourceReadStore) FindViewByID(_ context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	v, ok := s.views[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	return v, nil
}

func (s *fakeResourceReadStore) ListViews(_ context.Context, _ queries.ResourceFilter) ([]*queries.ResourceView, error) {
	out := make([]*queries.ResourceView, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	return out, nil
}

func TestAvailabilityListForDate(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	date := booking.NewDate(2026, time.September, 14)

	morning := &queries.SlotView{ID: uuid.New(), Label: "Morning Session 1", Start: "08:00", End: "10:00", Active: true}
	midday := &queries.SlotView{ID: uuid.New(), Label: "Midday Session", Start: "10:00", End: "12:00", Active: true}
	evening := &queries.SlotView{ID: uuid.New(), Label: "Evening Session", Start: "16:00", End: "18:00", Active: true}

	resources := &fakeResourceReadStore{views: map[uuid.UUID]*queries.ResourceView{
		resourceID: {ID: resourceID, Name: "Chemistry Lab"},
	}}

	t.Run("grid marks blocked slots unavailable", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&fakeSlotReadStore{slots: []*queries.SlotView{morning, midday, evening}},
			&fakeAvailabilityReadStore{blocked: []uuid.UUID{midday.ID}},
			resources,
		)

		grid, err := q.ListForDate(ctx, resourceID, date)
		require.NoError(t, err)
		require.Len(t, grid, 3)

		assert.True(t, grid[0].Available)
		assert.False(t, grid[1].Available)
		assert.True(t, grid[2].Available)
		assert.Equal(t, midday.ID, grid[1].SlotID)
	})

	t.Run("free day yields an all-available grid", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&fakeSlotReadStore{slots: []*queries.SlotView{morning, midday}},
			&fakeAvailabilityReadStore{},
			resources,
		)

		grid, err := q.ListForDate(ctx, resourceID, date)
		require.NoError(t, err)
		for _, g := range grid {
			assert.True(t, g.Available)
		}
	})

	t.Run("unknown resource", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(
			&fakeSlotReadStore{},
			&fakeAvailabilityReadStore{},
			resources,
		)

		_, err := q.ListForDate(ctx, uuid.New(), date)
		require.ErrorIs(t, err, queries.ErrResourceNotFound)
	})
}

//go:build unit

package commands_test

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/slot"
	"facility-booking/internal/domain/usage"
	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is shared in-memory state behind the fake unit of work. It
// mirrors the database constraints that matter to the commands: the partial
// unique index over blocking bookings, the unique slot window, and one usage
// record per booking.
type fakeStore struct {
	bookings  map[uuid.UUID]*booking.Booking
	slots     map[uuid.UUID]*slot.TimeSlot
	resources map[uuid.UUID]*resource.Resource
	usage     map[uuid.UUID]*usage.Record

	// hideBlocking makes HasBlocking report the slot as free even when a
	// blocking row exists, as if a concurrent writer committed between the
	// occupancy check and the insert. The insert still hits the index.
	hideBlocking bool
	// missWindowLookups makes that many FindByWindow calls miss, as if a
	// concurrent writer inserted the window between lookup and create.
	missWindowLookups int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings:  make(map[uuid.UUID]*booking.Booking),
		slots:     make(map[uuid.UUID]*slot.TimeSlot),
		resources: make(map[uuid.UUID]*resource.Resource),
		usage:     make(map[uuid.UUID]*usage.Record),
	}
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: newFakeStore()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository   { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Slots() shared.SlotRepository         { return &fakeSlotRepo{store: t.store} }
func (t *fakeTx) Resources() shared.ResourceRepository { return &fakeResourceRepo{store: t.store} }
func (t *fakeTx) Usage() shared.UsageRepository        { return &fakeUsageRepo{store: t.store} }

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if b.Status().IsBlocking() {
		for _, existing := range r.store.bookings {
			if existing.ResourceID() == b.ResourceID() &&
				existing.Date().Equal(b.Date()) &&
				existing.SlotID() == b.SlotID() &&
				existing.Status().IsBlocking() {
				return infra.WrapRepoErr(infra.KindDuplicateKey, "blocking booking exists", nil)
			}
		}
	}
	if _, ok := r.store.slots[b.SlotID()]; !ok {
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, "slot does not exist", nil)
	}
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, b *booking.Booking, from booking.Status) error {
	stored, ok := r.store.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	// FindForUpdate returns the live entity, so the in-place transition has
	// already happened when this runs; the guard compares against `from`.
	if stored != b && stored.Status() != from {
		return infra.WrapRepoErr(infra.KindStaleUpdate, "status changed concurrently", nil)
	}
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) HasBlocking(_ context.Context, resourceID uuid.UUID, date booking.Date, slotID uuid.UUID) (bool, error) {
	if r.store.hideBlocking {
		return false, nil
	}
	for _, b := range r.store.bookings {
		if b.ResourceID() == resourceID && b.Date().Equal(date) && b.SlotID() == slotID && b.Status().IsBlocking() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) AnyInStatuses(_ context.Context, resourceID uuid.UUID, statuses []booking.Status) (bool, error) {
	for _, b := range r.store.bookings {
		if b.ResourceID() != resourceID {
			continue
		}
		for _, s := range statuses {
			if b.Status() == s {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*slot.TimeSlot, error) {
	s, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
	}
	return s, nil
}

func (r *fakeSlotRepo) FindByWindow(_ context.Context, start, end slot.TimeOfDay) (*slot.TimeSlot, error) {
	if r.store.missWindowLookups > 0 {
		r.store.missWindowLookups--
		return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
	}
	for _, s := range r.store.slots {
		if s.Start() == start && s.End() == end {
			return s, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)
}

func (r *fakeSlotRepo) Create(_ context.Context, s *slot.TimeSlot) error {
	for _, existing := range r.store.slots {
		if existing.Start() == s.Start() && existing.End() == s.End() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "slot window exists", nil)
		}
	}
	r.store.slots[s.ID()] = s
	return nil
}

type fakeResourceRepo struct {
	store *fakeStore
}

func (r *fakeResourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.store.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	return res, nil
}

func (r *fakeResourceRepo) Create(_ context.Context, res *resource.Resource) error {
	r.store.resources[res.ID()] = res
	return nil
}

func (r *fakeResourceRepo) Update(_ context.Context, res *resource.Resource) error {
	if _, ok := r.store.resources[res.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	r.store.resources[res.ID()] = res
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.resources[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	delete(r.store.resources, id)
	return nil
}

type fakeUsageRepo struct {
	store *fakeStore
}

func (r *fakeUsageRepo) ExistsForBooking(_ context.Context, bookingID uuid.UUID) (bool, error) {
	_, ok := r.store.usage[bookingID]
	return ok, nil
}

func (r *fakeUsageRepo) Create(_ context.Context, rec *usage.Record) error {
	if _, ok := r.store.usage[rec.BookingID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "usage record exists", nil)
	}
	r.store.usage[rec.BookingID()] = rec
	return nil
}

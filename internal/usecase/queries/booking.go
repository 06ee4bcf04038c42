package queries

import (
	"context"

	dombooking "facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("not permitted to read this booking")
)

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListViews(ctx context.Context, f BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	List(ctx context.Context, f BookingFilter, actor user.Actor) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !dombooking.CanView(actor, view.UserID) {
		return nil, ErrForbidden
	}
	return view, nil
}

// List narrows the filter by role before querying: non-staff actors only
// ever see their own bookings, regardless of what the filter asked for.
func (q *bookingQueriesImpl) List(ctx context.Context, f BookingFilter, actor user.Actor) ([]*BookingView, error) {
	if !actor.IsStaff() {
		id := actor.ID
		f.UserID = &id
	}
	return q.store.ListViews(ctx, f)
}

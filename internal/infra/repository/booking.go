package repository

import (
	"context"
	"errors"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var bookingColumns = []string{
	"id", "resource_id", "user_id", "slot_id", "booking_date", "purpose",
	"status", "created_at", "approved_by", "approved_at", "rejected_by",
	"rejected_at", "rejection_reason", "cancelled_at",
}

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID(), b.ResourceID(), b.UserID(), b.SlotID(), b.Date().Time(),
			b.Purpose(), b.Status().String(), b.CreatedAt(), b.ApprovedBy(),
			b.ApprovedAt(), b.RejectedBy(), b.RejectedAt(), b.RejectionReason(),
			b.CancelledAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return wrapQueryErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking select", err)
	}

	return r.scanBooking(ctx, query, args)
}

// UpdateStatus writes the transition outcome guarded by the prior status; a
// zero-row update means another transition won the race.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	query, args, err := psql.Update("bookings").
		Set("status", b.Status().String()).
		Set("approved_by", b.ApprovedBy()).
		Set("approved_at", b.ApprovedAt()).
		Set("rejected_by", b.RejectedBy()).
		Set("rejected_at", b.RejectedAt()).
		Set("rejection_reason", b.RejectionReason()).
		Set("cancelled_at", b.CancelledAt()).
		Where(squirrel.Eq{"id": b.ID(), "status": from.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return wrapQueryErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindStaleUpdate, "booking status changed concurrently", nil)
	}
	return nil
}

func (r *BookingRepository) HasBlocking(ctx context.Context, resourceID uuid.UUID, date booking.Date, slotID uuid.UUID) (bool, error) {
	return r.exists(ctx, squirrel.Eq{
		"resource_id":  resourceID,
		"booking_date": date.Time(),
		"slot_id":      slotID,
		"status":       statusStrings(booking.BlockingStatuses()),
	})
}

func (r *BookingRepository) AnyInStatuses(ctx context.Context, resourceID uuid.UUID, statuses []booking.Status) (bool, error) {
	return r.exists(ctx, squirrel.Eq{
		"resource_id": resourceID,
		"status":      statusStrings(statuses),
	})
}

func (r *BookingRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	query, args, err := psql.Select("1").
		From("bookings").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking existence query", err)
	}

	var one int
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, wrapQueryErr("failed to check booking existence", err)
	}
	return true, nil
}

func (r *BookingRepository) scanBooking(ctx context.Context, query string, args []any) (*booking.Booking, error) {
	var (
		id, resourceID, userID, slotID          uuid.UUID
		bookingDate                             time.Time
		purpose, status                         string
		createdAt                               time.Time
		approvedBy, rejectedBy                  *uuid.UUID
		approvedAt, rejectedAt, cancelledAt     *time.Time
		rejectionReason                         *string
	)

	err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&id, &resourceID, &userID, &slotID, &bookingDate, &purpose, &status,
		&createdAt, &approvedBy, &approvedAt, &rejectedBy, &rejectedAt,
		&rejectionReason, &cancelledAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		id, resourceID, userID, slotID,
		booking.DateFromTime(bookingDate),
		purpose,
		booking.Status(status),
		createdAt,
		approvedBy, approvedAt,
		rejectedBy, rejectedAt, rejectionReason,
		cancelledAt,
	), nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

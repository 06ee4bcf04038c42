package readstore

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (s *BookingReadStore) baseSelect() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.resource_id", "r.name", "r.location", "b.user_id",
		"b.slot_id", "ts.label", "ts.start_time", "ts.end_time",
		"b.booking_date", "b.purpose", "b.status", "b.created_at",
		"b.approved_by", "b.approved_at", "b.rejected_by", "b.rejected_at",
		"b.rejection_reason", "b.cancelled_at",
		"(ur.id IS NOT NULL) AS has_usage_record",
	).
		From("bookings b").
		Join("resources r ON r.id = b.resource_id").
		Join("time_slots ts ON ts.id = b.slot_id").
		LeftJoin("usage_records ur ON ur.booking_id = b.id")
}

func (s *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := s.baseSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking view query", err)
	}

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query booking view", err)
	}
	defer rows.Close()

	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", pgx.ErrNoRows)
	}
	return views[0], nil
}

func (s *BookingReadStore) ListViews(ctx context.Context, f queries.BookingFilter) ([]*queries.BookingView, error) {
	q := s.baseSelect()
	if f.UserID != nil {
		q = q.Where(squirrel.Eq{"b.user_id": *f.UserID})
	}
	if f.ResourceID != nil {
		q = q.Where(squirrel.Eq{"b.resource_id": *f.ResourceID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"b.status": f.Status.String()})
	}
	if f.Date != nil {
		q = q.Where(squirrel.Eq{"b.booking_date": f.Date.Time()})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"b.booking_date": f.DateFrom.Time()})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"b.booking_date": f.DateTo.Time()})
	}
	q = q.OrderBy("b.booking_date DESC", "ts.start_time")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build booking list query", err)
	}

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query booking list", err)
	}
	defer rows.Close()

	return scanBookingViews(rows)
}

// BlockedSlotIDs returns the slot ids occupied by a blocking booking for the
// resource on the given date.
func (s *BookingReadStore) BlockedSlotIDs(ctx context.Context, resourceID uuid.UUID, date booking.Date) ([]uuid.UUID, error) {
	statuses := booking.BlockingStatuses()
	statusStrs := make([]string, len(statuses))
	for i, st := range statuses {
		statusStrs[i] = st.String()
	}

	query, args, err := psql.Select("slot_id").
		From("bookings").
		Where(squirrel.Eq{
			"resource_id":  resourceID,
			"booking_date": date.Time(),
			"status":       statusStrs,
		}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build blocked slots query", err)
	}

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query blocked slots", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan blocked slot id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read blocked slots", err)
	}
	return ids, nil
}

func scanBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for rows.Next() {
		var (
			v           queries.BookingView
			bookingDate time.Time
		)
		err := rows.Scan(
			&v.ID, &v.ResourceID, &v.ResourceName, &v.ResourceLocation,
			&v.UserID, &v.SlotID, &v.SlotLabel, &v.SlotStart, &v.SlotEnd,
			&bookingDate, &v.Purpose, &v.Status, &v.CreatedAt,
			&v.ApprovedBy, &v.ApprovedAt, &v.RejectedBy, &v.RejectedAt,
			&v.RejectionReason, &v.CancelledAt, &v.HasUsageRecord,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking view", err)
		}
		v.Date = booking.DateFromTime(bookingDate)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking views", err)
	}
	return views, nil
}

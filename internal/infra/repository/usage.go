package repository

import (
	"context"
	"errors"

	"facility-booking/internal/domain/usage"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UsageRepository struct {
	dbtx db.DBTX
}

func NewUsageRepository(dbtx db.DBTX) *UsageRepository {
	return &UsageRepository{dbtx: dbtx}
}

func (r *UsageRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		From("usage_records").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to build usage existence query", err)
	}

	var one int
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, wrapQueryErr("failed to check usage record existence", err)
	}
	return true, nil
}

func (r *UsageRepository) Create(ctx context.Context, rec *usage.Record) error {
	query, args, err := psql.Insert("usage_records").
		Columns("id", "booking_id", "uploaded_by", "remarks", "issues", "created_at").
		Values(rec.ID(), rec.BookingID(), rec.UploadedBy(), rec.Remarks(), rec.Issues(), rec.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build usage insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return wrapQueryErr("failed to create usage record", err)
	}
	return nil
}

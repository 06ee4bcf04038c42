package repository

import (
	"context"

	"facility-booking/internal/domain/slot"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type SlotRepository struct {
	dbtx db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{dbtx: dbtx}
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.TimeSlot, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *SlotRepository) FindByWindow(ctx context.Context, start, end slot.TimeOfDay) (*slot.TimeSlot, error) {
	return r.findOne(ctx, squirrel.Eq{"start_time": start.String(), "end_time": end.String()})
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.TimeSlot) error {
	query, args, err := psql.Insert("time_slots").
		Columns("id", "label", "start_time", "end_time", "is_active").
		Values(s.ID(), s.Label(), s.Start().String(), s.End().String(), s.IsActive()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return wrapQueryErr("failed to create time slot", err)
	}
	return nil
}

func (r *SlotRepository) findOne(ctx context.Context, pred squirrel.Eq) (*slot.TimeSlot, error) {
	query, args, err := psql.Select("id", "label", "start_time", "end_time", "is_active").
		From("time_slots").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot select", err)
	}

	var (
		id                  uuid.UUID
		label, startS, endS string
		active              bool
	)
	if err := r.dbtx.QueryRow(ctx, query, args...).Scan(&id, &label, &startS, &endS, &active); err != nil {
		return nil, wrapQueryErr("failed to find time slot", err)
	}

	start, err := slot.NewTimeOfDay(startS)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt slot start time", err)
	}
	end, err := slot.NewTimeOfDay(endS)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt slot end time", err)
	}

	return slot.ReconstructTimeSlot(id, label, start, end, active), nil
}

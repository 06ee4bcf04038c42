package readstore

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
)

type SlotReadStore struct {
	dbtx db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{dbtx: dbtx}
}

func (s *SlotReadStore) ListActive(ctx context.Context) ([]*queries.SlotView, error) {
	query, args, err := psql.Select("id", "label", "start_time", "end_time", "is_active").
		From("time_slots").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build slot list query", err)
	}

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query active slots", err)
	}
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.Label, &v.Start, &v.End, &v.Active); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan slot view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read slot views", err)
	}
	return views, nil
}

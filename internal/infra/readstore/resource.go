package readstore

import (
	"context"
	"errors"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResourceReadStore struct {
	dbtx db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{dbtx: dbtx}
}

func (s *ResourceReadStore) baseSelect() squirrel.SelectBuilder {
	return psql.Select(
		"id", "name", "category", "capacity", "location", "description",
		"status", "created_at", "updated_at",
	).From("resources")
}

func (s *ResourceReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	query, args, err := s.baseSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource view query", err)
	}

	var v queries.ResourceView
	err = s.dbtx.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.Name, &v.Category, &v.Capacity, &v.Location,
		&v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query resource view", err)
	}
	return &v, nil
}

func (s *ResourceReadStore) ListViews(ctx context.Context, f queries.ResourceFilter) ([]*queries.ResourceView, error) {
	q := s.baseSelect()
	if f.Category != nil {
		q = q.Where(squirrel.Eq{"category": *f.Category})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": f.Status.String()})
	}
	if f.Search != nil {
		pattern := "%" + *f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"location": pattern},
		})
	}
	q = q.OrderBy("name")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource list query", err)
	}

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query resource list", err)
	}
	defer rows.Close()

	var views []*queries.ResourceView
	for rows.Next() {
		var v queries.ResourceView
		err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Capacity, &v.Location,
			&v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan resource view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read resource views", err)
	}
	return views, nil
}

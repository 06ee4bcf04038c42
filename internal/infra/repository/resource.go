package repository

import (
	"context"
	"time"

	"facility-booking/internal/domain/resource"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var resourceColumns = []string{
	"id", "name", "category", "capacity", "location", "description",
	"status", "created_at", "updated_at",
}

type ResourceRepository struct {
	dbtx db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{dbtx: dbtx}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	query, args, err := psql.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource select", err)
	}

	var (
		resID                                         uuid.UUID
		name, category, location, description, status string
		capacity                                      int
		createdAt, updatedAt                          time.Time
	)
	err = r.dbtx.QueryRow(ctx, query, args...).Scan(
		&resID, &name, &category, &capacity, &location, &description,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find resource", err)
	}

	return resource.ReconstructResource(
		resID, name, category, capacity, location, description,
		resource.Status(status), createdAt, updatedAt,
	), nil
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	query, args, err := psql.Insert("resources").
		Columns(resourceColumns...).
		Values(
			res.ID(), res.Name(), res.Category(), res.Capacity(), res.Location(),
			res.Description(), res.Status().String(), res.CreatedAt(), res.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource insert", err)
	}

	if _, err := r.dbtx.Exec(ctx, query, args...); err != nil {
		return wrapQueryErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	query, args, err := psql.Update("resources").
		Set("name", res.Name()).
		Set("category", res.Category()).
		Set("capacity", res.Capacity()).
		Set("location", res.Location()).
		Set("description", res.Description()).
		Set("status", res.Status().String()).
		Set("updated_at", res.UpdatedAt()).
		Where(squirrel.Eq{"id": res.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource update", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return wrapQueryErr("failed to update resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found for update", nil)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build resource delete", err)
	}

	tag, err := r.dbtx.Exec(ctx, query, args...)
	if err != nil {
		return wrapQueryErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found for delete", nil)
	}
	return nil
}

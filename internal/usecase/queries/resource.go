package queries

import (
	"context"

	"facility-booking/internal/infra"

	"github.com/google/uuid"
)

type ResourceReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ListViews(ctx context.Context, f ResourceFilter) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, f ResourceFilter) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, f ResourceFilter) ([]*ResourceView, error) {
	return q.store.ListViews(ctx, f)
}

package queries

import (
	"context"
	"encoding/json"
	"time"

	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID          uuid.UUID
	Name        string
	Kind        string
	Description string
	Capacity    int32
	IsActive    bool
	Details     json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResourceFilter mirrors the browse endpoint: only active resources, optional
// kind filter and case-insensitive name/description search.
type ResourceFilter struct {
	Kind   *string
	Search *string
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	ListResources(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	readStore ResourceReadStore
}

func NewResourceQueries(readStore ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{readStore: readStore}
}

func (q *resourceQueriesImpl) GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Wrap(err, "failed to find resource")
	}
	return view, nil
}

func (q *resourceQueriesImpl) ListResources(ctx context.Context, filter ResourceFilter) ([]*ResourceView, error) {
	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list resources")
	}
	return views, nil
}

package queries

import (
	"context"

	"cane-market/internal/domain/catalog"
	"cane-market/internal/infra"
	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	// Search composes set-membership predicates; absent filters impose
	// no constraint and an empty result is valid. Inventory is never
	// consulted here.
	Search(ctx context.Context, filter catalog.SearchFilter) ([]*VarietyView, error)
	GetVariety(ctx context.Context, id uuid.UUID) (*VarietyView, error)
}

type CatalogReadStore interface {
	Search(ctx context.Context, filter catalog.SearchFilter) ([]*VarietyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VarietyView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Search(ctx context.Context, filter catalog.SearchFilter) ([]*VarietyView, error) {
	views, err := q.store.Search(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "catalog search failed")
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetVariety(ctx context.Context, id uuid.UUID) (*VarietyView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to get variety")
	}
	return view, nil
}

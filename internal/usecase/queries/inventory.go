package queries

import (
	"context"

	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	// ListByVariety backs the "shops selling this variety" view. No
	// ordering contract beyond stable iteration; price sorting is a
	// client concern.
	ListByVariety(ctx context.Context, varietyID uuid.UUID) ([]*InventoryOfferView, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*ShopInventoryView, error)
}

type InventoryReadStore interface {
	FindByVariety(ctx context.Context, varietyID uuid.UUID) ([]*InventoryOfferView, error)
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*ShopInventoryView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) ListByVariety(ctx context.Context, varietyID uuid.UUID) ([]*InventoryOfferView, error) {
	views, err := q.store.FindByVariety(ctx, varietyID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list inventory by variety")
	}
	return views, nil
}

func (q *inventoryQueriesImpl) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*ShopInventoryView, error) {
	views, err := q.store.FindByShop(ctx, shopID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list inventory by shop")
	}
	return views, nil
}

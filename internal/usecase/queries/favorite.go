package queries

import (
	"context"

	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type FavoriteQueries interface {
	// ListFavorites returns the favorited varieties joined from the
	// catalog; insertion order is irrelevant.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*VarietyView, error)
}

type FavoriteReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*VarietyView, error)
}

type favoriteQueriesImpl struct {
	store FavoriteReadStore
}

func NewFavoriteQueries(store FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{store: store}
}

func (q *favoriteQueriesImpl) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*VarietyView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list favorites")
	}
	return views, nil
}

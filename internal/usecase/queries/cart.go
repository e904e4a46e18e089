package queries

import (
	"context"

	"cane-market/internal/domain/auth"
	"cane-market/internal/infra"
	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartQueries interface {
	// ListPendingForUser feeds cart rendering; settled lines stay in
	// storage as order history but are excluded here.
	ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*CartLineView, error)
	// ListPaidForShop is the shop's read-only "orders received" view.
	ListPaidForShop(ctx context.Context, actor auth.Actor, shopID uuid.UUID) ([]*OrderView, error)
	GetLine(ctx context.Context, id uuid.UUID) (*CartLineView, error)
}

type CartReadStore interface {
	FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*CartLineView, error)
	FindPaidByShop(ctx context.Context, shopID uuid.UUID) ([]*OrderView, error)
	FindLineByID(ctx context.Context, id uuid.UUID) (*CartLineView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]*CartLineView, error) {
	views, err := q.store.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending cart lines")
	}
	return views, nil
}

func (q *cartQueriesImpl) ListPaidForShop(ctx context.Context, actor auth.Actor, shopID uuid.UUID) ([]*OrderView, error) {
	if !actor.CanManageShop(shopID) {
		return nil, errs.ErrForbidden
	}
	views, err := q.store.FindPaidByShop(ctx, shopID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list paid lines for shop")
	}
	return views, nil
}

func (q *cartQueriesImpl) GetLine(ctx context.Context, id uuid.UUID) (*CartLineView, error) {
	view, err := q.store.FindLineByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to get cart line")
	}
	return view, nil
}

package commands

import (
	"context"

	"cane-market/internal/domain/auth"
	"cane-market/internal/domain/cart"
	"cane-market/internal/infra"
	"cane-market/internal/pkg/clock"
	"cane-market/internal/pkg/errs"
	"cane-market/internal/usecase/queries"
	"cane-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddToCartInput struct {
	ShopID    uuid.UUID
	VarietyID uuid.UUID
	Quantity  int32
}

// PaidLine is the write-side result of a checkout; display joins are a
// read-side concern.
type PaidLine struct {
	ID        uuid.UUID       `json:"id"`
	ShopID    uuid.UUID       `json:"shop_id"`
	VarietyID uuid.UUID       `json:"variety_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CheckoutResult struct {
	Lines     []PaidLine      `json:"lines"`
	ItemCount int32           `json:"item_count"` // sum of line quantities
	Total     decimal.Decimal `json:"total"`      // sum of price×quantity
}

type CartCommands interface {
	// AddToCart snapshots the current inventory price into a pending
	// line; a pending line for the same (user, shop, variety) absorbs
	// the quantity instead of duplicating (merge-on-add).
	AddToCart(ctx context.Context, actor auth.Actor, input AddToCartInput) (*queries.CartLineView, error)
	// UpdateQuantity is legal only while the line is pending; a target
	// below 1 is rejected, callers should remove the line instead.
	UpdateQuantity(ctx context.Context, actor auth.Actor, lineID uuid.UUID, quantity int32) (*queries.CartLineView, error)
	// RemoveLine hard-deletes a pending line. Settled lines are
	// immutable history and cannot be removed here.
	RemoveLine(ctx context.Context, actor auth.Actor, lineID uuid.UUID) error
	// Checkout transitions every pending line of the user to paid as
	// one atomic unit, or none on any failure. Inventory stock is
	// deliberately not re-validated; totals come from the snapshotted
	// lines. A caller that times out must treat the outcome as unknown
	// and re-query the pending list; a blind retry finds no pending
	// lines and gets ErrEmptyCart.
	Checkout(ctx context.Context, actor auth.Actor) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	cartRepo      CartRepository
	inventoryRepo InventoryRepository
	cartQueries   queries.CartQueries
	uow           shared.UnitOfWork
	clock         clock.Clock
}

func NewCartCommands(
	cartRepo CartRepository,
	inventoryRepo InventoryRepository,
	cartQueries queries.CartQueries,
	uow shared.UnitOfWork,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		cartRepo:      cartRepo,
		inventoryRepo: inventoryRepo,
		cartQueries:   cartQueries,
		uow:           uow,
		clock:         clock,
	}
}

func (c *cartCommandsImpl) AddToCart(ctx context.Context, actor auth.Actor, input AddToCartInput) (*queries.CartLineView, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	rec, err := c.inventoryRepo.FindByPair(ctx, input.ShopID, input.VarietyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnavailable)
		}
		return nil, errs.Wrap(err, "failed to look up inventory")
	}
	if !rec.IsAvailable() {
		return nil, errs.ErrUnavailable
	}

	line, err := cart.NewLine(actor.UserID, input.ShopID, input.VarietyID, rec.Price(), quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	lineID, err := c.cartRepo.UpsertPendingLine(ctx, line)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) || infra.IsKind(err, infra.KindOutOfRange) {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		return nil, errs.Wrap(err, "failed to add cart line")
	}

	// Read-after-write: return the merged line, not the candidate
	return c.cartQueries.GetLine(ctx, lineID)
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, actor auth.Actor, lineID uuid.UUID, quantity int32) (*queries.CartLineView, error) {
	line, err := c.loadOwnedLine(ctx, actor, lineID)
	if err != nil {
		return nil, err
	}

	if err := line.ChangeQuantity(quantity); err != nil {
		switch err {
		case cart.ErrLineNotPending:
			return nil, errs.Mark(err, errs.ErrConflict)
		default:
			return nil, errs.Mark(err, errs.ErrValidation)
		}
	}

	if err := c.cartRepo.UpdateQuantity(ctx, lineID, line.Quantity()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Raced with checkout: the line settled between the read
			// and this write
			return nil, errs.Mark(err, errs.ErrConflict)
		}
		return nil, errs.Wrap(err, "failed to update cart line")
	}

	return c.cartQueries.GetLine(ctx, lineID)
}

func (c *cartCommandsImpl) RemoveLine(ctx context.Context, actor auth.Actor, lineID uuid.UUID) error {
	line, err := c.loadOwnedLine(ctx, actor, lineID)
	if err != nil {
		return err
	}
	if !line.CanBeRemoved() {
		return errs.Mark(cart.ErrLineNotPending, errs.ErrConflict)
	}

	if err := c.cartRepo.DeletePending(ctx, lineID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrConflict)
		}
		return errs.Wrap(err, "failed to remove cart line")
	}
	return nil
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, actor auth.Actor) (*CheckoutResult, error) {
	var result *CheckoutResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.CartLines().LockPendingByUser(ctx, actor.UserID)
		if err != nil {
			return errs.Wrap(err, "failed to read pending cart lines")
		}
		if len(lines) == 0 {
			return errs.ErrEmptyCart
		}

		affected, err := tx.CartLines().MarkPaidByUser(ctx, actor.UserID, c.clock.Now())
		if err != nil {
			return errs.Wrap(err, "failed to mark cart lines paid")
		}
		if affected != int64(len(lines)) {
			// The locked set changed underneath us; abort the whole batch
			return errs.ErrConflict
		}

		result = buildCheckoutResult(lines)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *cartCommandsImpl) loadOwnedLine(ctx context.Context, actor auth.Actor, lineID uuid.UUID) (*cart.Line, error) {
	line, err := c.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to load cart line")
	}
	if !line.OwnedBy(actor.UserID) {
		// Another user's line is indistinguishable from a missing one
		return nil, errs.Mark(cart.ErrNotLineOwner, errs.ErrNotFound)
	}
	return line, nil
}

func buildCheckoutResult(lines []*cart.Line) *CheckoutResult {
	result := &CheckoutResult{
		Lines: make([]PaidLine, len(lines)),
		Total: decimal.Zero,
	}
	for i, line := range lines {
		subtotal := line.Subtotal()
		result.Lines[i] = PaidLine{
			ID:        line.ID(),
			ShopID:    line.ShopID(),
			VarietyID: line.VarietyID(),
			Price:     line.Price(),
			Quantity:  line.Quantity(),
			Subtotal:  subtotal,
		}
		result.ItemCount += line.Quantity()
		result.Total = result.Total.Add(subtotal)
	}
	return result
}

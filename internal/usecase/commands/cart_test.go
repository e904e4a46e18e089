//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"cane-market/internal/domain/auth"
	"cane-market/internal/domain/cart"
	"cane-market/internal/domain/inventory"
	"cane-market/internal/infra"
	"cane-market/internal/pkg/clock"
	"cane-market/internal/pkg/errs"
	"cane-market/internal/usecase/commands"
	"cane-market/internal/usecase/shared"
	"cane-market/tests/common/builder"
	queriesmock "cane-market/tests/mock/queries"
	repositorymock "cane-market/tests/mock/repository"
	sharedmock "cane-market/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type cartCommandsFixture struct {
	ctrl     *gomock.Controller
	cartRepo *repositorymock.MockCartRepository
	invRepo  *repositorymock.MockInventoryRepository
	cartQs   *queriesmock.MockCartQueries
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	txCart   *sharedmock.MockCartTxRepository
	clock    *clock.MockClock
	commands commands.CartCommands
	customer auth.Actor
}

func newCartCommandsFixture(t *testing.T) *cartCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &cartCommandsFixture{
		ctrl:     ctrl,
		cartRepo: repositorymock.NewMockCartRepository(ctrl),
		invRepo:  repositorymock.NewMockInventoryRepository(ctrl),
		cartQs:   queriesmock.NewMockCartQueries(ctrl),
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		txCart:   sharedmock.NewMockCartTxRepository(ctrl),
		clock:    clock.NewMockClock(time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)),
		customer: auth.Actor{UserID: uuid.New(), Role: auth.RoleCustomer},
	}
	f.commands = commands.NewCartCommands(f.cartRepo, f.invRepo, f.cartQs, f.uow, f.clock)
	return f
}

// expectWithin wires the mock UnitOfWork to execute the checkout body
// against the mock transaction, the way the real one would.
func (f *cartCommandsFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
	f.tx.EXPECT().CartLines().Return(f.txCart).AnyTimes()
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("success: snapshots the inventory price", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		inv := builder.NewInventoryBuilder().WithPrice(decimal.RequireFromString("88.50"))
		rec := inv.BuildStored()
		lineView := builder.NewCartLineBuilder().BuildView()

		f.invRepo.EXPECT().FindByPair(ctx, inv.ShopID, inv.VarietyID).Return(rec, nil)
		f.cartRepo.EXPECT().UpsertPendingLine(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, line *cart.Line) (uuid.UUID, error) {
				assert.True(t, decimal.RequireFromString("88.50").Equal(line.Price()))
				assert.Equal(t, int32(3), line.Quantity())
				assert.Equal(t, f.customer.UserID, line.UserID())
				return lineView.ID, nil
			})
		f.cartQs.EXPECT().GetLine(ctx, lineView.ID).Return(lineView, nil)

		got, err := f.commands.AddToCart(ctx, f.customer, commands.AddToCartInput{
			ShopID:    inv.ShopID,
			VarietyID: inv.VarietyID,
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, lineView, got)
	})

	t.Run("omitted quantity defaults to 1", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		inv := builder.NewInventoryBuilder()
		lineView := builder.NewCartLineBuilder().BuildView()

		f.invRepo.EXPECT().FindByPair(ctx, inv.ShopID, inv.VarietyID).Return(inv.BuildStored(), nil)
		f.cartRepo.EXPECT().UpsertPendingLine(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, line *cart.Line) (uuid.UUID, error) {
				assert.Equal(t, int32(1), line.Quantity())
				return lineView.ID, nil
			})
		f.cartQs.EXPECT().GetLine(ctx, lineView.ID).Return(lineView, nil)

		_, err := f.commands.AddToCart(ctx, f.customer, commands.AddToCartInput{
			ShopID:    inv.ShopID,
			VarietyID: inv.VarietyID,
		})
		require.NoError(t, err)
	})

	t.Run("unknown pair maps to unavailable", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		shopID, varietyID := uuid.New(), uuid.New()

		f.invRepo.EXPECT().FindByPair(ctx, shopID, varietyID).
			Return(nil, infra.WrapRepoErr("inventory not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.commands.AddToCart(ctx, f.customer, commands.AddToCartInput{ShopID: shopID, VarietyID: varietyID, Quantity: 1})
		require.ErrorIs(t, err, errs.ErrUnavailable)
	})

	t.Run("out of stock maps to unavailable", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		inv := builder.NewInventoryBuilder().WithStatus(inventory.StatusOutOfStock)

		f.invRepo.EXPECT().FindByPair(ctx, inv.ShopID, inv.VarietyID).Return(inv.BuildStored(), nil)

		_, err := f.commands.AddToCart(ctx, f.customer, commands.AddToCartInput{ShopID: inv.ShopID, VarietyID: inv.VarietyID, Quantity: 1})
		require.ErrorIs(t, err, errs.ErrUnavailable)
	})

	t.Run("merged quantity past the integer range maps to validation", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		inv := builder.NewInventoryBuilder()

		f.invRepo.EXPECT().FindByPair(ctx, inv.ShopID, inv.VarietyID).Return(inv.BuildStored(), nil)
		f.cartRepo.EXPECT().UpsertPendingLine(ctx, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("merged quantity is too large", errors.New("numeric_value_out_of_range"), infra.KindOutOfRange))

		_, err := f.commands.AddToCart(ctx, f.customer, commands.AddToCartInput{ShopID: inv.ShopID, VarietyID: inv.VarietyID, Quantity: math.MaxInt32})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID)
		view := b.BuildView()

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)
		f.cartRepo.EXPECT().UpdateQuantity(ctx, b.ID, int32(5)).Return(nil)
		f.cartQs.EXPECT().GetLine(ctx, b.ID).Return(view, nil)

		got, err := f.commands.UpdateQuantity(ctx, f.customer, b.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("another user's line looks like not found", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder() // random owner

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)

		_, err := f.commands.UpdateQuantity(ctx, f.customer, b.ID, 5)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("settled line maps to conflict", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID).WithStatus(cart.StatusPaid)

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)

		_, err := f.commands.UpdateQuantity(ctx, f.customer, b.ID, 5)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("quantity below 1 maps to validation", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID)

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)

		_, err := f.commands.UpdateQuantity(ctx, f.customer, b.ID, 0)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("write raced with checkout maps to conflict", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID)

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)
		f.cartRepo.EXPECT().UpdateQuantity(ctx, b.ID, int32(5)).
			Return(infra.WrapRepoErr("line is not pending", nil, infra.KindConflict))

		_, err := f.commands.UpdateQuantity(ctx, f.customer, b.ID, 5)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRemoveLine(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID)

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)
		f.cartRepo.EXPECT().DeletePending(ctx, b.ID).Return(nil)

		require.NoError(t, f.commands.RemoveLine(ctx, f.customer, b.ID))
	})

	t.Run("missing line maps to not found", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		id := uuid.New()

		f.cartRepo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("cart line not found", errors.New("no rows"), infra.KindNotFound))

		require.ErrorIs(t, f.commands.RemoveLine(ctx, f.customer, id), errs.ErrNotFound)
	})

	t.Run("settled line maps to conflict", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		b := builder.NewCartLineBuilder().WithUser(f.customer.UserID).WithStatus(cart.StatusCancelled)

		f.cartRepo.EXPECT().FindByID(ctx, b.ID).Return(b.BuildStored(), nil)

		require.ErrorIs(t, f.commands.RemoveLine(ctx, f.customer, b.ID), errs.ErrConflict)
	})
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("success: all pending lines settle together", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		f.expectWithin()

		lineA := builder.NewCartLineBuilder().WithUser(f.customer.UserID).WithQuantity(2)
		lineA.Price = decimal.RequireFromString("10.00")
		lineB := builder.NewCartLineBuilder().WithUser(f.customer.UserID).WithQuantity(1)
		lineB.Price = decimal.RequireFromString("35.50")
		locked := []*cart.Line{lineA.BuildStored(), lineB.BuildStored()}

		f.txCart.EXPECT().LockPendingByUser(gomock.Any(), f.customer.UserID).Return(locked, nil)
		f.txCart.EXPECT().MarkPaidByUser(gomock.Any(), f.customer.UserID, f.clock.Now()).Return(int64(2), nil)

		result, err := f.commands.Checkout(ctx, f.customer)
		require.NoError(t, err)
		assert.Equal(t, int32(3), result.ItemCount)
		assert.True(t, decimal.RequireFromString("55.50").Equal(result.Total))

		expected := []commands.PaidLine{
			{
				ID:        lineA.ID,
				ShopID:    lineA.ShopID,
				VarietyID: lineA.VarietyID,
				Price:     lineA.Price,
				Quantity:  2,
				Subtotal:  decimal.RequireFromString("20.00"),
			},
			{
				ID:        lineB.ID,
				ShopID:    lineB.ShopID,
				VarietyID: lineB.VarietyID,
				Price:     lineB.Price,
				Quantity:  1,
				Subtotal:  decimal.RequireFromString("35.50"),
			},
		}
		if diff := cmp.Diff(expected, result.Lines, decimalComparer); diff != "" {
			t.Errorf("paid lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		f.expectWithin()

		f.txCart.EXPECT().LockPendingByUser(gomock.Any(), f.customer.UserID).Return(nil, nil)

		_, err := f.commands.Checkout(ctx, f.customer)
		require.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("settled count mismatch aborts the batch", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		f.expectWithin()

		line := builder.NewCartLineBuilder().WithUser(f.customer.UserID)
		f.txCart.EXPECT().LockPendingByUser(gomock.Any(), f.customer.UserID).
			Return([]*cart.Line{line.BuildStored()}, nil)
		f.txCart.EXPECT().MarkPaidByUser(gomock.Any(), f.customer.UserID, f.clock.Now()).Return(int64(0), nil)

		_, err := f.commands.Checkout(ctx, f.customer)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("transaction error propagates and yields no result", func(t *testing.T) {
		f := newCartCommandsFixture(t)
		boom := errors.New("deadlock detected")
		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(boom)

		result, err := f.commands.Checkout(ctx, f.customer)
		require.ErrorIs(t, err, boom)
		assert.Nil(t, result)
	})
}

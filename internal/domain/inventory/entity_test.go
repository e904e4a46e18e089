//go:build unit

package inventory_test

import (
	"testing"

	"cane-market/internal/domain/inventory"
	"cane-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.InventoryBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewInventoryBuilder()
			tc.mutate(b)
			rec, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rec)
		})
	}
}

func TestRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewInventoryBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, inventory.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
		require.NotNil(t, actual.Quantity())
		assert.Equal(t, int32(50), *actual.Quantity())
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.InventoryBuilder) { b.WithPrice(decimal.Zero) },
				errIs:  inventory.ErrNonPositivePrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.InventoryBuilder) { b.WithPrice(decimal.NewFromInt(-5)) },
				errIs:  inventory.ErrNonPositivePrice,
			},
			{
				name:   "smallest positive price",
				mutate: func(b *builder.InventoryBuilder) { b.WithPrice(decimal.RequireFromString("0.01")) },
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		negative := int32(-1)
		zero := int32(0)
		runCases(t, []testCase{
			{
				name:   "negative quantity",
				mutate: func(b *builder.InventoryBuilder) { b.WithQuantity(&negative) },
				errIs:  inventory.ErrNegativeQuantity,
			},
			{
				name:   "zero quantity is tracked but not invalid",
				mutate: func(b *builder.InventoryBuilder) { b.WithQuantity(&zero) },
			},
			{
				name:   "nil quantity means untracked",
				mutate: func(b *builder.InventoryBuilder) { b.WithQuantity(nil) },
			},
		})
	})

	t.Run("status validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown status",
				mutate: func(b *builder.InventoryBuilder) { b.WithStatus("discontinued") },
				errIs:  inventory.ErrInvalidStatus,
			},
			{
				name:   "out of stock",
				mutate: func(b *builder.InventoryBuilder) { b.WithStatus(inventory.StatusOutOfStock) },
			},
		})
	})

	t.Run("empty status defaults to available", func(t *testing.T) {
		rec, err := builder.NewInventoryBuilder().WithStatus("").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, inventory.StatusAvailable, rec.Status())
	})

	t.Run("out of stock is not available regardless of quantity", func(t *testing.T) {
		qty := int32(100)
		rec, err := builder.NewInventoryBuilder().
			WithQuantity(&qty).
			WithStatus(inventory.StatusOutOfStock).
			BuildDomain()
		require.NoError(t, err)
		assert.False(t, rec.IsAvailable())
	})
}

func TestApplyStockUpdate(t *testing.T) {
	newQty := int32(7)
	outOfStock := inventory.StatusOutOfStock

	t.Run("updates quantity only", func(t *testing.T) {
		rec := builder.NewInventoryBuilder().BuildStored()
		err := rec.ApplyStockUpdate(inventory.StockUpdate{Quantity: &newQty})
		require.NoError(t, err)
		require.NotNil(t, rec.Quantity())
		assert.Equal(t, int32(7), *rec.Quantity())
		assert.Equal(t, inventory.StatusAvailable, rec.Status())
	})

	t.Run("updates status only", func(t *testing.T) {
		rec := builder.NewInventoryBuilder().BuildStored()
		err := rec.ApplyStockUpdate(inventory.StockUpdate{Status: &outOfStock})
		require.NoError(t, err)
		assert.Equal(t, inventory.StatusOutOfStock, rec.Status())
		require.NotNil(t, rec.Quantity())
		assert.Equal(t, int32(50), *rec.Quantity())
	})

	t.Run("rejects an update with nothing to change", func(t *testing.T) {
		rec := builder.NewInventoryBuilder().BuildStored()
		err := rec.ApplyStockUpdate(inventory.StockUpdate{})
		require.ErrorIs(t, err, inventory.ErrEmptyStockUpdate)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		bad := int32(-2)
		rec := builder.NewInventoryBuilder().BuildStored()
		err := rec.ApplyStockUpdate(inventory.StockUpdate{Quantity: &bad})
		require.ErrorIs(t, err, inventory.ErrNegativeQuantity)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		bad := inventory.Status("gone")
		rec := builder.NewInventoryBuilder().BuildStored()
		err := rec.ApplyStockUpdate(inventory.StockUpdate{Status: &bad})
		require.ErrorIs(t, err, inventory.ErrInvalidStatus)
	})
}

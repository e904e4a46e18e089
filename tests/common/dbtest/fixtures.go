//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestShop(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	shopID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO shops (id, name, contact, address) VALUES ($1, $2, '081-000-0000', 'Khon Kaen')",
		shopID, name)
	require.NoError(t, err)

	return shopID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string, shopID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role, shop_id) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, role, shopID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestVariety(t *testing.T, db DBLike, name, soilType string, pests, diseases []string) uuid.UUID {
	t.Helper()

	varietyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO varieties (id, name, soil_type, pests, diseases) VALUES ($1, $2, $3, $4, $5)",
		varietyID, name, soilType, pests, diseases)
	require.NoError(t, err)

	return varietyID
}

func CreateTestInventory(t *testing.T, db DBLike, shopID, varietyID uuid.UUID, price decimal.Decimal, quantity *int32, status string) uuid.UUID {
	t.Helper()

	inventoryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO shop_inventory (id, shop_id, variety_id, price, quantity, status) VALUES ($1, $2, $3, $4, $5, $6)",
		inventoryID, shopID, varietyID, price.String(), quantity, status)
	require.NoError(t, err)

	return inventoryID
}

func CountCartLines(t *testing.T, db DBLike, userID uuid.UUID, status string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM cart_lines WHERE user_id = $1 AND status = $2",
		userID, status).Scan(&count)
	require.NoError(t, err)

	return count
}

// ResetDB truncates all mutable tables between subtests. Catalog and
// reference rows are cheap to recreate per test, so everything goes.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx,
		"TRUNCATE cart_lines, favorites, shop_inventory, varieties, users, shops CASCADE")
	return err
}

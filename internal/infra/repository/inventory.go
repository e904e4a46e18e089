package repository

import (
	"context"

	"cane-market/internal/domain/inventory"
	"cane-market/internal/infra"
	"cane-market/internal/infra/db"
	"cane-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

const insertInventorySQL = `
INSERT INTO shop_inventory (id, shop_id, variety_id, price, quantity, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// Create is the explicit-add path: a second create for the same
// (shop, variety) pair surfaces the unique constraint as DUPLICATE_KEY
// instead of silently overwriting.
func (r *InventoryRepository) Create(ctx context.Context, rec *inventory.Record) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertInventorySQL,
		rec.ID(),
		rec.ShopID(),
		rec.VarietyID(),
		pgconv.DecimalToNumeric(rec.Price()),
		pgconv.Int32PtrToPgtype(rec.Quantity()),
		rec.Status().String(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("inventory already exists for shop and variety", err, infra.KindDuplicateKey)
		}
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("unknown shop or variety", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create inventory", err)
	}
	return id, nil
}

const upsertInventorySQL = `
INSERT INTO shop_inventory (id, shop_id, variety_id, price, quantity, status)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT ON CONSTRAINT shop_inventory_shop_variety_key
DO UPDATE SET price = EXCLUDED.price,
              quantity = EXCLUDED.quantity,
              status = EXCLUDED.status,
              updated_at = now()
RETURNING id`

// Upsert is the bulk-seed path: it creates the pair or replaces
// price/quantity/status of the existing record in one statement.
func (r *InventoryRepository) Upsert(ctx context.Context, rec *inventory.Record) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertInventorySQL,
		rec.ID(),
		rec.ShopID(),
		rec.VarietyID(),
		pgconv.DecimalToNumeric(rec.Price()),
		pgconv.Int32PtrToPgtype(rec.Quantity()),
		rec.Status().String(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("unknown shop or variety", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to upsert inventory", err)
	}
	return id, nil
}

const selectInventoryByIDSQL = `
SELECT id, shop_id, variety_id, price, quantity, status, created_at, updated_at
FROM shop_inventory
WHERE id = $1`

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Record, error) {
	return r.scanRecord(r.db.QueryRow(ctx, selectInventoryByIDSQL, id))
}

const selectInventoryByPairSQL = `
SELECT id, shop_id, variety_id, price, quantity, status, created_at, updated_at
FROM shop_inventory
WHERE shop_id = $1 AND variety_id = $2`

func (r *InventoryRepository) FindByPair(ctx context.Context, shopID, varietyID uuid.UUID) (*inventory.Record, error) {
	return r.scanRecord(r.db.QueryRow(ctx, selectInventoryByPairSQL, shopID, varietyID))
}

const updateStockSQL = `
UPDATE shop_inventory
SET quantity = $2, status = $3, updated_at = now()
WHERE id = $1`

// UpdateStock persists a record that already had ApplyStockUpdate run
// against it.
func (r *InventoryRepository) UpdateStock(ctx context.Context, rec *inventory.Record) error {
	tag, err := r.db.Exec(ctx, updateStockSQL,
		rec.ID(),
		pgconv.Int32PtrToPgtype(rec.Quantity()),
		rec.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *InventoryRepository) scanRecord(row rowScanner) (*inventory.Record, error) {
	var (
		id, shopID, varietyID uuid.UUID
		price                 pgtype.Numeric
		quantity              pgtype.Int4
		status                string
		createdAt, updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &shopID, &varietyID, &price, &quantity, &status, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory", err)
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid inventory price", err)
	}

	return inventory.ReconstructRecord(
		id, shopID, varietyID,
		priceDec,
		pgconv.Int32PtrFromPgtype(quantity),
		inventory.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

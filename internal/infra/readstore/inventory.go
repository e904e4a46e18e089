package readstore

import (
	"context"

	"cane-market/internal/infra"
	"cane-market/internal/infra/db"
	"cane-market/internal/pkg/pgconv"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

const selectOffersByVarietySQL = `
SELECT i.id, i.shop_id, s.name, s.contact, s.address, i.variety_id,
       i.price, i.quantity, i.status, i.updated_at
FROM shop_inventory i
JOIN shops s ON s.id = i.shop_id
WHERE i.variety_id = $1
ORDER BY i.created_at, i.id`

func (r *InventoryReadStore) FindByVariety(ctx context.Context, varietyID uuid.UUID) ([]*queries.InventoryOfferView, error) {
	rows, err := r.db.Query(ctx, selectOffersByVarietySQL, varietyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offers by variety", err)
	}
	defer rows.Close()

	result := []*queries.InventoryOfferView{}
	for rows.Next() {
		var (
			view      queries.InventoryOfferView
			price     pgtype.Numeric
			quantity  pgtype.Int4
			updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.ShopID, &view.ShopName, &view.ShopContact, &view.ShopAddress,
			&view.VarietyID, &price, &quantity, &view.Status, &updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid offer price", err)
		}
		view.Quantity = pgconv.Int32PtrFromPgtype(quantity)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return result, nil
}

const selectInventoryByShopSQL = `
SELECT i.id, i.shop_id, i.variety_id, v.name, v.soil_type, v.image_url,
       i.price, i.quantity, i.status, i.updated_at
FROM shop_inventory i
JOIN varieties v ON v.id = i.variety_id
WHERE i.shop_id = $1
ORDER BY i.created_at, i.id`

func (r *InventoryReadStore) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.ShopInventoryView, error) {
	rows, err := r.db.Query(ctx, selectInventoryByShopSQL, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find inventory by shop", err)
	}
	defer rows.Close()

	result := []*queries.ShopInventoryView{}
	for rows.Next() {
		var (
			view      queries.ShopInventoryView
			imageURL  pgtype.Text
			price     pgtype.Numeric
			quantity  pgtype.Int4
			updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.ShopID, &view.VarietyID, &view.VarietyName, &view.SoilType, &imageURL,
			&price, &quantity, &view.Status, &updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop inventory", err)
		}
		if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid inventory price", err)
		}
		view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
		view.Quantity = pgconv.Int32PtrFromPgtype(quantity)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shop inventory", err)
	}
	return result, nil
}

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

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

const selectCartLineViewSQL = `
SELECT c.id, c.shop_id, s.name, c.variety_id, v.name, v.image_url,
       c.price, c.quantity, (c.price * c.quantity), c.status, c.created_at
FROM cart_lines c
JOIN shops s ON s.id = c.shop_id
JOIN varieties v ON v.id = c.variety_id`

func (r *CartReadStore) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*queries.CartLineView, error) {
	sql := selectCartLineViewSQL + `
WHERE c.user_id = $1 AND c.status = 'pending'
ORDER BY c.created_at, c.id`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending cart lines", err)
	}
	defer rows.Close()

	result := []*queries.CartLineView{}
	for rows.Next() {
		view, scanErr := scanCartLineView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	return result, nil
}

func (r *CartReadStore) FindLineByID(ctx context.Context, id uuid.UUID) (*queries.CartLineView, error) {
	view, err := scanCartLineView(r.db.QueryRow(ctx, selectCartLineViewSQL+"\nWHERE c.id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart line by ID", err)
	}
	return view, nil
}

const selectPaidByShopSQL = `
SELECT c.id, c.user_id, u.email, c.variety_id, v.name,
       c.price, c.quantity, (c.price * c.quantity), c.paid_at
FROM cart_lines c
JOIN users u ON u.id = c.user_id
JOIN varieties v ON v.id = c.variety_id
WHERE c.shop_id = $1 AND c.status = 'paid'
ORDER BY c.paid_at DESC, c.id`

func (r *CartReadStore) FindPaidByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, selectPaidByShopSQL, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find paid lines for shop", err)
	}
	defer rows.Close()

	result := []*queries.OrderView{}
	for rows.Next() {
		var (
			view            queries.OrderView
			price, subtotal pgtype.Numeric
			paidAt          pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.UserID, &view.UserEmail, &view.VarietyID, &view.VarietyName,
			&price, &view.Quantity, &subtotal, &paidAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan paid line", err)
		}
		if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid paid line price", err)
		}
		if view.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
			return nil, infra.WrapRepoErr("invalid paid line subtotal", err)
		}
		view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read paid lines", err)
	}
	return result, nil
}

func scanCartLineView(row rowScanner) (*queries.CartLineView, error) {
	var (
		view            queries.CartLineView
		imageURL        pgtype.Text
		price, subtotal pgtype.Numeric
		createdAt       pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.ShopID, &view.ShopName, &view.VarietyID, &view.VarietyName, &imageURL,
		&price, &view.Quantity, &subtotal, &view.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	if view.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, err
	}
	if view.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return nil, err
	}
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

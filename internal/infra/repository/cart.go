package repository

import (
	"context"
	"time"

	"cane-market/internal/domain/cart"
	"cane-market/internal/infra"
	"cane-market/internal/infra/db"
	"cane-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(dbtx db.DBTX) *CartRepository {
	return &CartRepository{db: dbtx}
}

const upsertPendingLineSQL = `
INSERT INTO cart_lines (id, user_id, shop_id, variety_id, price, quantity, status)
VALUES ($1, $2, $3, $4, $5, $6, 'pending')
ON CONFLICT (user_id, shop_id, variety_id) WHERE status = 'pending'
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity,
              updated_at = now()
RETURNING id`

// UpsertPendingLine implements merge-on-add against the partial unique
// index: a concurrent add for the same (user, shop, variety) lands on
// the existing pending line's quantity. The conflict branch leaves the
// stored price untouched so the original snapshot survives.
func (r *CartRepository) UpsertPendingLine(ctx context.Context, line *cart.Line) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, upsertPendingLineSQL,
		line.ID(),
		line.UserID(),
		line.ShopID(),
		line.VarietyID(),
		pgconv.DecimalToNumeric(line.Price()),
		line.Quantity(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("unknown user, shop or variety", err, infra.KindForeignKeyViolated)
		}
		if db.IsNumericOutOfRange(err) {
			// Merge-on-add summed past the INTEGER range
			return uuid.Nil, infra.WrapRepoErr("merged quantity is too large", err, infra.KindOutOfRange)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to add cart line", err)
	}
	return id, nil
}

const selectCartLineByIDSQL = `
SELECT id, user_id, shop_id, variety_id, price, quantity, status, paid_at, created_at, updated_at
FROM cart_lines
WHERE id = $1`

func (r *CartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Line, error) {
	line, err := scanCartLine(r.db.QueryRow(ctx, selectCartLineByIDSQL, id))
	if err != nil {
		return nil, err
	}
	return line, nil
}

const updateQuantitySQL = `
UPDATE cart_lines
SET quantity = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'`

// UpdateQuantity only touches pending lines; the status predicate makes
// a race with checkout fail closed instead of mutating settled history.
func (r *CartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) error {
	tag, err := r.db.Exec(ctx, updateQuantitySQL, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart line quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line is not pending", nil, infra.KindConflict)
	}
	return nil
}

const deletePendingLineSQL = `
DELETE FROM cart_lines
WHERE id = $1 AND status = 'pending'`

func (r *CartRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePendingLineSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line is not pending", nil, infra.KindConflict)
	}
	return nil
}

const lockPendingByUserSQL = `
SELECT id, user_id, shop_id, variety_id, price, quantity, status, paid_at, created_at, updated_at
FROM cart_lines
WHERE user_id = $1 AND status = 'pending'
ORDER BY created_at, id
FOR UPDATE`

// LockPendingByUser reads the user's pending lines under FOR UPDATE so
// a concurrent remove/update blocks until the surrounding checkout
// transaction settles.
func (r *CartRepository) LockPendingByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Line, error) {
	rows, err := r.db.Query(ctx, lockPendingByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending cart lines", err)
	}
	defer rows.Close()

	var lines []*cart.Line
	for rows.Next() {
		line, scanErr := scanCartLine(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending cart lines", err)
	}
	return lines, nil
}

const markPaidByUserSQL = `
UPDATE cart_lines
SET status = 'paid', paid_at = $2, updated_at = now()
WHERE user_id = $1 AND status = 'pending'`

// MarkPaidByUser flips every pending line of the user to paid in one
// statement and reports how many rows it touched; the caller compares
// that against the locked set.
func (r *CartRepository) MarkPaidByUser(ctx context.Context, userID uuid.UUID, paidAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, markPaidByUserSQL, userID, pgconv.TimeToPgtype(paidAt))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark cart lines paid", err)
	}
	return tag.RowsAffected(), nil
}

func scanCartLine(row rowScanner) (*cart.Line, error) {
	var (
		id, userID, shopID, varietyID uuid.UUID
		price                         pgtype.Numeric
		quantity                      int32
		status                        string
		paidAt                        pgtype.Timestamptz
		createdAt, updatedAt          pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &shopID, &varietyID, &price, &quantity, &status, &paidAt, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart line", err)
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid cart line price", err)
	}

	return cart.ReconstructLine(
		id, userID, shopID, varietyID,
		priceDec,
		quantity,
		cart.Status(status),
		pgconv.TimePtrFromPgtype(paidAt),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

package repository

import (
	"context"

	"cane-market/internal/infra"
	"cane-market/internal/infra/db"

	"github.com/google/uuid"
)

type FavoriteRepository struct {
	db db.DBTX
}

func NewFavoriteRepository(dbtx db.DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: dbtx}
}

const insertFavoriteSQL = `
INSERT INTO favorites (user_id, variety_id)
VALUES ($1, $2)
ON CONFLICT (user_id, variety_id) DO NOTHING`

// Add is idempotent: the UI toggles optimistically and may double-fire,
// so an existing edge is a benign no-op rather than an error.
func (r *FavoriteRepository) Add(ctx context.Context, userID, varietyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, insertFavoriteSQL, userID, varietyID)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("unknown user or variety", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to add favorite", err)
	}
	return nil
}

const deleteFavoriteSQL = `
DELETE FROM favorites
WHERE user_id = $1 AND variety_id = $2`

// Remove is idempotent: removing a non-existent edge is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, varietyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, deleteFavoriteSQL, userID, varietyID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err)
	}
	return nil
}

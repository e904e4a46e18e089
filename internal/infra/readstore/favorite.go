package readstore

import (
	"context"

	"cane-market/internal/infra"
	"cane-market/internal/infra/db"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteReadStore struct {
	db db.DBTX
}

func NewFavoriteReadStore(dbtx db.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{db: dbtx}
}

const selectFavoritesByUserSQL = `
SELECT v.id, v.name, v.soil_type, v.pests, v.diseases, v.image_url, v.created_at, v.updated_at
FROM favorites f
JOIN varieties v ON v.id = f.variety_id
WHERE f.user_id = $1
ORDER BY f.created_at, v.id`

func (r *FavoriteReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.VarietyView, error) {
	rows, err := r.db.Query(ctx, selectFavoritesByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find favorites", err)
	}
	defer rows.Close()

	return collectVarietyViews(rows)
}

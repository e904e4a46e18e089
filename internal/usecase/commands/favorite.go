package commands

import (
	"context"

	"cane-market/internal/infra"
	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Two states per (user, variety) pair, both transitions idempotent.
// The uniqueness constraint lives in storage; a duplicate add never
// reaches application logic as an error.
type FavoriteCommands interface {
	Add(ctx context.Context, userID, varietyID uuid.UUID) error
	Remove(ctx context.Context, userID, varietyID uuid.UUID) error
}

type favoriteCommandsImpl struct {
	favoriteRepo FavoriteRepository
}

func NewFavoriteCommands(favoriteRepo FavoriteRepository) FavoriteCommands {
	return &favoriteCommandsImpl{favoriteRepo: favoriteRepo}
}

func (c *favoriteCommandsImpl) Add(ctx context.Context, userID, varietyID uuid.UUID) error {
	if err := c.favoriteRepo.Add(ctx, userID, varietyID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, errs.ErrValidation)
		}
		return errs.Wrap(err, "failed to add favorite")
	}
	return nil
}

func (c *favoriteCommandsImpl) Remove(ctx context.Context, userID, varietyID uuid.UUID) error {
	if err := c.favoriteRepo.Remove(ctx, userID, varietyID); err != nil {
		return errs.Wrap(err, "failed to remove favorite")
	}
	return nil
}

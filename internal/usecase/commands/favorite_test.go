//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"cane-market/internal/infra"
	"cane-market/internal/pkg/errs"
	"cane-market/internal/usecase/commands"
	repositorymock "cane-market/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFavoriteAdd(t *testing.T) {
	ctx := context.Background()
	userID, varietyID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repositorymock.NewMockFavoriteRepository(ctrl)

		repo.EXPECT().Add(ctx, userID, varietyID).Return(nil)

		require.NoError(t, commands.NewFavoriteCommands(repo).Add(ctx, userID, varietyID))
	})

	t.Run("unknown variety maps to validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repositorymock.NewMockFavoriteRepository(ctrl)

		repo.EXPECT().Add(ctx, userID, varietyID).
			Return(infra.WrapRepoErr("unknown variety", errors.New("23503"), infra.KindForeignKeyViolated))

		err := commands.NewFavoriteCommands(repo).Add(ctx, userID, varietyID)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestFavoriteRemove(t *testing.T) {
	ctx := context.Background()
	userID, varietyID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repositorymock.NewMockFavoriteRepository(ctrl)

		repo.EXPECT().Remove(ctx, userID, varietyID).Return(nil)

		require.NoError(t, commands.NewFavoriteCommands(repo).Remove(ctx, userID, varietyID))
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repositorymock.NewMockFavoriteRepository(ctrl)
		boom := errors.New("connection refused")

		repo.EXPECT().Remove(ctx, userID, varietyID).Return(boom)

		err := commands.NewFavoriteCommands(repo).Remove(ctx, userID, varietyID)
		require.ErrorIs(t, err, boom)
	})
}

package commands

import (
	"context"

	"cane-market/internal/domain/cart"
	"cane-market/internal/domain/inventory"

	"github.com/google/uuid"
)

// Write-side ports, declared consumer-side so infra depends on the
// usecase layer and not the other way around.

type InventoryRepository interface {
	Create(ctx context.Context, rec *inventory.Record) (uuid.UUID, error)
	Upsert(ctx context.Context, rec *inventory.Record) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Record, error)
	FindByPair(ctx context.Context, shopID, varietyID uuid.UUID) (*inventory.Record, error)
	UpdateStock(ctx context.Context, rec *inventory.Record) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, varietyID uuid.UUID) error
	Remove(ctx context.Context, userID, varietyID uuid.UUID) error
}

type CartRepository interface {
	UpsertPendingLine(ctx context.Context, line *cart.Line) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*cart.Line, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) error
	DeletePending(ctx context.Context, id uuid.UUID) error
}

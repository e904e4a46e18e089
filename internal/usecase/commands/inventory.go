package commands

import (
	"context"

	"cane-market/internal/domain/auth"
	"cane-market/internal/domain/inventory"
	"cane-market/internal/infra"
	"cane-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryInput struct {
	ShopID    uuid.UUID
	VarietyID uuid.UUID
	Price     decimal.Decimal
	Quantity  *int32
	Status    inventory.Status
}

type StockUpdateInput struct {
	Quantity *int32
	Status   *inventory.Status
}

type InventoryCommands interface {
	// Create is the explicit add; a second create for the same
	// (shop, variety) pair fails with ErrDuplicateInventory.
	Create(ctx context.Context, actor auth.Actor, input InventoryInput) (uuid.UUID, error)
	// Upsert creates the pair or replaces price/quantity/status of the
	// existing record (bulk-seed path).
	Upsert(ctx context.Context, actor auth.Actor, input InventoryInput) (uuid.UUID, error)
	// UpdateStock partially updates quantity and/or status.
	UpdateStock(ctx context.Context, actor auth.Actor, inventoryID uuid.UUID, input StockUpdateInput) error
}

type inventoryCommandsImpl struct {
	inventoryRepo InventoryRepository
}

func NewInventoryCommands(inventoryRepo InventoryRepository) InventoryCommands {
	return &inventoryCommandsImpl{inventoryRepo: inventoryRepo}
}

func (c *inventoryCommandsImpl) Create(ctx context.Context, actor auth.Actor, input InventoryInput) (uuid.UUID, error) {
	rec, err := c.buildRecord(actor, input)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := c.inventoryRepo.Create(ctx, rec)
	if err != nil {
		return uuid.Nil, mapInventoryWriteErr(err)
	}
	return id, nil
}

func (c *inventoryCommandsImpl) Upsert(ctx context.Context, actor auth.Actor, input InventoryInput) (uuid.UUID, error) {
	rec, err := c.buildRecord(actor, input)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := c.inventoryRepo.Upsert(ctx, rec)
	if err != nil {
		return uuid.Nil, mapInventoryWriteErr(err)
	}
	return id, nil
}

func (c *inventoryCommandsImpl) UpdateStock(ctx context.Context, actor auth.Actor, inventoryID uuid.UUID, input StockUpdateInput) error {
	rec, err := c.inventoryRepo.FindByID(ctx, inventoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Wrap(err, "failed to load inventory")
	}

	if !actor.CanManageShop(rec.ShopID()) {
		return errs.ErrForbidden
	}

	update := inventory.StockUpdate{Quantity: input.Quantity, Status: input.Status}
	if err := rec.ApplyStockUpdate(update); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	if err := c.inventoryRepo.UpdateStock(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Wrap(err, "failed to update stock")
	}
	return nil
}

func (c *inventoryCommandsImpl) buildRecord(actor auth.Actor, input InventoryInput) (*inventory.Record, error) {
	if !actor.CanManageShop(input.ShopID) {
		return nil, errs.ErrForbidden
	}

	rec, err := inventory.NewRecord(input.ShopID, input.VarietyID, input.Price, input.Quantity, input.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return rec, nil
}

func mapInventoryWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateInventory)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		// Unknown shop/variety ids propagate as validation errors
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Wrap(err, "inventory write failed")
	}
}

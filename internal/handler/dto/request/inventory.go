package request

import (
	"cane-market/internal/domain/inventory"
	"cane-market/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInventoryRequest struct {
	VarietyID uuid.UUID       `json:"variety_id" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Quantity  *int32          `json:"quantity,omitempty"`
	Status    *string         `json:"status,omitempty"`
}

func (r CreateInventoryRequest) ToInput(shopID uuid.UUID) commands.InventoryInput {
	var status inventory.Status
	if r.Status != nil {
		status = inventory.Status(*r.Status)
	}
	return commands.InventoryInput{
		ShopID:    shopID,
		VarietyID: r.VarietyID,
		Price:     r.Price,
		Quantity:  r.Quantity,
		Status:    status,
	}
}

type UpdateStockRequest struct {
	Quantity *int32  `json:"quantity,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (r UpdateStockRequest) ToInput() commands.StockUpdateInput {
	var status *inventory.Status
	if r.Status != nil {
		s := inventory.Status(*r.Status)
		status = &s
	}
	return commands.StockUpdateInput{
		Quantity: r.Quantity,
		Status:   status,
	}
}

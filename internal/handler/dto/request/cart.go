package request

import (
	"cane-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddToCartRequest struct {
	ShopID    uuid.UUID `json:"shop_id" binding:"required"`
	VarietyID uuid.UUID `json:"variety_id" binding:"required"`
	// Quantity defaults to 1 when omitted
	Quantity int32 `json:"quantity,omitempty" binding:"omitempty,min=1"`
}

func (r AddToCartRequest) ToInput() commands.AddToCartInput {
	return commands.AddToCartInput{
		ShopID:    r.ShopID,
		VarietyID: r.VarietyID,
		Quantity:  r.Quantity,
	}
}

type UpdateCartQuantityRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}

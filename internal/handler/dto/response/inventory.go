package response

import (
	"time"

	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type InventoryOfferResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shopId"`
	ShopName    string          `json:"shopName"`
	ShopContact string          `json:"shopContact"`
	ShopAddress string          `json:"shopAddress"`
	VarietyID   uuid.UUID       `json:"varietyId"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int32          `json:"quantity,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ShopInventoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shopId"`
	VarietyID   uuid.UUID       `json:"varietyId"`
	VarietyName string          `json:"varietyName"`
	SoilType    string          `json:"soilType"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int32          `json:"quantity,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromInventoryOfferViews(rms []*queries.InventoryOfferView) []*InventoryOfferResponse {
	out := make([]*InventoryOfferResponse, len(rms))
	for i, rm := range rms {
		out[i] = &InventoryOfferResponse{
			ID:          rm.ID,
			ShopID:      rm.ShopID,
			ShopName:    rm.ShopName,
			ShopContact: rm.ShopContact,
			ShopAddress: rm.ShopAddress,
			VarietyID:   rm.VarietyID,
			Price:       rm.Price,
			Quantity:    rm.Quantity,
			Status:      rm.Status,
			UpdatedAt:   rm.UpdatedAt,
		}
	}
	return out
}

func FromShopInventoryViews(rms []*queries.ShopInventoryView) []*ShopInventoryResponse {
	out := make([]*ShopInventoryResponse, len(rms))
	for i, rm := range rms {
		out[i] = &ShopInventoryResponse{
			ID:          rm.ID,
			ShopID:      rm.ShopID,
			VarietyID:   rm.VarietyID,
			VarietyName: rm.VarietyName,
			SoilType:    rm.SoilType,
			ImageURL:    rm.ImageURL,
			Price:       rm.Price,
			Quantity:    rm.Quantity,
			Status:      rm.Status,
			UpdatedAt:   rm.UpdatedAt,
		}
	}
	return out
}

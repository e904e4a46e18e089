package response

import (
	"time"

	"cane-market/internal/usecase/commands"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shopId"`
	ShopName    string          `json:"shopName"`
	VarietyID   uuid.UUID       `json:"varietyId"`
	VarietyName string          `json:"varietyName"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	UserEmail   string          `json:"userEmail"`
	VarietyID   uuid.UUID       `json:"varietyId"`
	VarietyName string          `json:"varietyName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`
}

type PaidLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ShopID    uuid.UUID       `json:"shopId"`
	VarietyID uuid.UUID       `json:"varietyId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CheckoutResponse struct {
	Lines     []PaidLineResponse `json:"lines"`
	ItemCount int32              `json:"itemCount"`
	Total     decimal.Decimal    `json:"total"`
}

func FromCartLineView(rm *queries.CartLineView) *CartLineResponse {
	return &CartLineResponse{
		ID:          rm.ID,
		ShopID:      rm.ShopID,
		ShopName:    rm.ShopName,
		VarietyID:   rm.VarietyID,
		VarietyName: rm.VarietyName,
		ImageURL:    rm.ImageURL,
		Price:       rm.Price,
		Quantity:    rm.Quantity,
		Subtotal:    rm.Subtotal,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromCartLineViews(rms []*queries.CartLineView) []*CartLineResponse {
	out := make([]*CartLineResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCartLineView(rm)
	}
	return out
}

func FromOrderViews(rms []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		out[i] = &OrderResponse{
			ID:          rm.ID,
			UserID:      rm.UserID,
			UserEmail:   rm.UserEmail,
			VarietyID:   rm.VarietyID,
			VarietyName: rm.VarietyName,
			Price:       rm.Price,
			Quantity:    rm.Quantity,
			Subtotal:    rm.Subtotal,
			PaidAt:      rm.PaidAt,
		}
	}
	return out
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	resp := &CheckoutResponse{
		Lines:     make([]PaidLineResponse, len(result.Lines)),
		ItemCount: result.ItemCount,
		Total:     result.Total,
	}
	for i, line := range result.Lines {
		resp.Lines[i] = PaidLineResponse{
			ID:        line.ID,
			ShopID:    line.ShopID,
			VarietyID: line.VarietyID,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		}
	}
	return resp
}

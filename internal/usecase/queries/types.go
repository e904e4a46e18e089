package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type VarietyView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SoilType  string    `json:"soil_type"`
	Pests     []string  `json:"pests"`
	Diseases  []string  `json:"diseases"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryOfferView is one shop's offer for a variety, joined with
// the shop's display data ("shops selling X").
type InventoryOfferView struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	ShopName    string          `json:"shop_name"`
	ShopContact string          `json:"shop_contact"`
	ShopAddress string          `json:"shop_address"`
	VarietyID   uuid.UUID       `json:"variety_id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int32          `json:"quantity,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ShopInventoryView is an inventory record joined with its variety,
// for the shop's own dashboard.
type ShopInventoryView struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	VarietyID   uuid.UUID       `json:"variety_id"`
	VarietyName string          `json:"variety_name"`
	SoilType    string          `json:"soil_type"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int32          `json:"quantity,omitempty"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartLineView is a pending line joined with display data for cart
// rendering. Price is the creation-time snapshot, not the live
// inventory price.
type CartLineView struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shop_id"`
	ShopName    string          `json:"shop_name"`
	VarietyID   uuid.UUID       `json:"variety_id"`
	VarietyName string          `json:"variety_name"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderView is a paid line joined with buyer and variety data, for a
// shop's "orders received" history.
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	UserEmail   string          `json:"user_email"`
	VarietyID   uuid.UUID       `json:"variety_id"`
	VarietyName string          `json:"variety_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

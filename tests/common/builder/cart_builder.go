//go:build unit || e2e

package builder

import (
	"time"

	domcart "cane-market/internal/domain/cart"
	reqdto "cane-market/internal/handler/dto/request"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ShopID      uuid.UUID
	ShopName    string
	VarietyID   uuid.UUID
	VarietyName string
	Price       decimal.Decimal
	Quantity    int32
	Status      domcart.Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCartLineBuilder() *CartLineBuilder {
	now := time.Now()
	return &CartLineBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ShopID:      uuid.New(),
		ShopName:    "Test Shop",
		VarietyID:   uuid.New(),
		VarietyName: "Khon Kaen 3",
		Price:       decimal.NewFromInt(120),
		Quantity:    2,
		Status:      domcart.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CartLineBuilder) With(mutate func(*CartLineBuilder)) *CartLineBuilder {
	mutate(b)
	return b
}

func (b *CartLineBuilder) WithQuantity(quantity int32) *CartLineBuilder {
	b.Quantity = quantity
	return b
}

func (b *CartLineBuilder) WithStatus(status domcart.Status) *CartLineBuilder {
	b.Status = status
	return b
}

func (b *CartLineBuilder) WithUser(userID uuid.UUID) *CartLineBuilder {
	b.UserID = userID
	return b
}

func (b *CartLineBuilder) BuildDomain() (*domcart.Line, error) {
	return domcart.NewLine(b.UserID, b.ShopID, b.VarietyID, b.Price, b.Quantity)
}

func (b *CartLineBuilder) BuildStored() *domcart.Line {
	return domcart.ReconstructLine(
		b.ID, b.UserID, b.ShopID, b.VarietyID,
		b.Price, b.Quantity, b.Status, b.PaidAt,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *CartLineBuilder) BuildAddRequestDTO() reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{
		ShopID:    b.ShopID,
		VarietyID: b.VarietyID,
		Quantity:  b.Quantity,
	}
}

func (b *CartLineBuilder) BuildView() *queries.CartLineView {
	return &queries.CartLineView{
		ID:          b.ID,
		ShopID:      b.ShopID,
		ShopName:    b.ShopName,
		VarietyID:   b.VarietyID,
		VarietyName: b.VarietyName,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Subtotal:    b.Price.Mul(decimal.NewFromInt32(b.Quantity)),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

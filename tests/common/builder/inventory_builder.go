//go:build unit || e2e

package builder

import (
	"time"

	dominventory "cane-market/internal/domain/inventory"
	reqdto "cane-market/internal/handler/dto/request"
	"cane-market/internal/usecase/commands"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryBuilder struct {
	ID        uuid.UUID
	ShopID    uuid.UUID
	ShopName  string
	VarietyID uuid.UUID
	Price     decimal.Decimal
	Quantity  *int32
	Status    dominventory.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInventoryBuilder() *InventoryBuilder {
	now := time.Now()
	qty := int32(50)
	return &InventoryBuilder{
		ID:        uuid.New(),
		ShopID:    uuid.New(),
		ShopName:  "Test Shop",
		VarietyID: uuid.New(),
		Price:     decimal.NewFromInt(120),
		Quantity:  &qty,
		Status:    dominventory.StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) WithPrice(price decimal.Decimal) *InventoryBuilder {
	b.Price = price
	return b
}

func (b *InventoryBuilder) WithQuantity(quantity *int32) *InventoryBuilder {
	b.Quantity = quantity
	return b
}

func (b *InventoryBuilder) WithStatus(status dominventory.Status) *InventoryBuilder {
	b.Status = status
	return b
}

func (b *InventoryBuilder) BuildDomain() (*dominventory.Record, error) {
	return dominventory.NewRecord(b.ShopID, b.VarietyID, b.Price, b.Quantity, b.Status)
}

func (b *InventoryBuilder) BuildStored() *dominventory.Record {
	return dominventory.ReconstructRecord(
		b.ID, b.ShopID, b.VarietyID, b.Price, b.Quantity, b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *InventoryBuilder) BuildInput() commands.InventoryInput {
	return commands.InventoryInput{
		ShopID:    b.ShopID,
		VarietyID: b.VarietyID,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Status:    b.Status,
	}
}

func (b *InventoryBuilder) BuildCreateRequestDTO() reqdto.CreateInventoryRequest {
	status := string(b.Status)
	return reqdto.CreateInventoryRequest{
		VarietyID: b.VarietyID,
		Price:     b.Price,
		Quantity:  b.Quantity,
		Status:    &status,
	}
}

func (b *InventoryBuilder) BuildShopInventoryView() *queries.ShopInventoryView {
	return &queries.ShopInventoryView{
		ID:          b.ID,
		ShopID:      b.ShopID,
		VarietyID:   b.VarietyID,
		VarietyName: "Khon Kaen 3",
		SoilType:    "loam",
		Price:       b.Price,
		Quantity:    b.Quantity,
		Status:      string(b.Status),
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *InventoryBuilder) BuildOfferView() *queries.InventoryOfferView {
	return &queries.InventoryOfferView{
		ID:          b.ID,
		ShopID:      b.ShopID,
		ShopName:    b.ShopName,
		ShopContact: "081-234-5678",
		ShopAddress: "99 Moo 4, Khon Kaen",
		VarietyID:   b.VarietyID,
		Price:       b.Price,
		Quantity:    b.Quantity,
		Status:      string(b.Status),
		UpdatedAt:   b.UpdatedAt,
	}
}

package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrInvalidStatus    = errors.New("invalid inventory status")
	ErrEmptyStockUpdate = errors.New("stock update must change quantity or status")
)

// Record is one shop's offer for one variety. At most one Record may
// exist per (shop, variety); the pair uniqueness is enforced by the
// storage layer, not here.
type Record struct {
	id        uuid.UUID
	shopID    uuid.UUID
	varietyID uuid.UUID
	price     decimal.Decimal
	quantity  *int32
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewRecord(shopID, varietyID uuid.UUID, price decimal.Decimal, quantity *int32, status Status) (*Record, error) {
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if quantity != nil && *quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if status == "" {
		status = StatusAvailable
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return &Record{
		id:        uuid.New(),
		shopID:    shopID,
		varietyID: varietyID,
		price:     price,
		quantity:  quantity,
		status:    status,
	}, nil
}

func ReconstructRecord(
	id, shopID, varietyID uuid.UUID,
	price decimal.Decimal,
	quantity *int32,
	status Status,
	createdAt, updatedAt time.Time,
) *Record {
	return &Record{
		id:        id,
		shopID:    shopID,
		varietyID: varietyID,
		price:     price,
		quantity:  quantity,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// StockUpdate is a partial mutation; nil fields are left unchanged.
type StockUpdate struct {
	Quantity *int32
	Status   *Status
}

func (u StockUpdate) Validate() error {
	if u.Quantity == nil && u.Status == nil {
		return ErrEmptyStockUpdate
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if u.Status != nil && !u.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (r *Record) ApplyStockUpdate(u StockUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Quantity != nil {
		q := *u.Quantity
		r.quantity = &q
	}
	if u.Status != nil {
		r.status = *u.Status
	}
	return nil
}

func (r *Record) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Record) ID() uuid.UUID          { return r.id }
func (r *Record) ShopID() uuid.UUID      { return r.shopID }
func (r *Record) VarietyID() uuid.UUID   { return r.varietyID }
func (r *Record) Price() decimal.Decimal { return r.price }
func (r *Record) Quantity() *int32       { return r.quantity }
func (r *Record) Status() Status         { return r.status }
func (r *Record) CreatedAt() time.Time   { return r.createdAt }
func (r *Record) UpdatedAt() time.Time   { return r.updatedAt }

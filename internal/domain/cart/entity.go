package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuantityTooLow   = errors.New("quantity must be at least 1")
	ErrLineNotPending   = errors.New("cart line is no longer pending")
	ErrNonPositivePrice = errors.New("snapshot price must be positive")
	ErrNotLineOwner     = errors.New("cart line belongs to another user")
)

// Line is a user's queued-or-settled purchase intent for one
// (shop, variety) pair. Price is a snapshot taken from the inventory
// record when the line was created; it never tracks later inventory
// price changes.
type Line struct {
	id        uuid.UUID
	userID    uuid.UUID
	shopID    uuid.UUID
	varietyID uuid.UUID
	price     decimal.Decimal
	quantity  int32
	status    Status
	paidAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewLine(userID, shopID, varietyID uuid.UUID, price decimal.Decimal, quantity int32) (*Line, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}

	return &Line{
		id:        uuid.New(),
		userID:    userID,
		shopID:    shopID,
		varietyID: varietyID,
		price:     price,
		quantity:  quantity,
		status:    StatusPending,
	}, nil
}

func ReconstructLine(
	id, userID, shopID, varietyID uuid.UUID,
	price decimal.Decimal,
	quantity int32,
	status Status,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Line {
	return &Line{
		id:        id,
		userID:    userID,
		shopID:    shopID,
		varietyID: varietyID,
		price:     price,
		quantity:  quantity,
		status:    status,
		paidAt:    paidAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeQuantity is legal only while pending. A quantity below 1 is
// rejected; callers wanting zero should remove the line instead.
func (l *Line) ChangeQuantity(quantity int32) error {
	if l.status != StatusPending {
		return ErrLineNotPending
	}
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	l.quantity = quantity
	return nil
}

func (l *Line) CanBeRemoved() bool {
	return l.status == StatusPending
}

func (l *Line) OwnedBy(userID uuid.UUID) bool {
	return l.userID == userID
}

// Subtotal is price×quantity at the snapshotted price.
func (l *Line) Subtotal() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt32(l.quantity))
}

func (l *Line) ID() uuid.UUID          { return l.id }
func (l *Line) UserID() uuid.UUID      { return l.userID }
func (l *Line) ShopID() uuid.UUID      { return l.shopID }
func (l *Line) VarietyID() uuid.UUID   { return l.varietyID }
func (l *Line) Price() decimal.Decimal { return l.price }
func (l *Line) Quantity() int32        { return l.quantity }
func (l *Line) Status() Status         { return l.status }
func (l *Line) PaidAt() *time.Time     { return l.paidAt }
func (l *Line) CreatedAt() time.Time   { return l.createdAt }
func (l *Line) UpdatedAt() time.Time   { return l.updatedAt }

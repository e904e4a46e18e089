package shared

import (
	"context"
	"time"

	"cane-market/internal/domain/cart"
	"cane-market/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork bounds the one multi-row write this core has: the
// checkout batch transition. Single-row operations go through plain
// repositories and are atomic by construction.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	CartLines() CartTxRepository
	DB() db.DBTX
}

// CartTxRepository is the transactional slice of the cart repository
// used by checkout.
type CartTxRepository interface {
	LockPendingByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Line, error)
	MarkPaidByUser(ctx context.Context, userID uuid.UUID, paidAt time.Time) (int64, error)
}

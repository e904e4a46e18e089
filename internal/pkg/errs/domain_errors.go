package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Malformed or out-of-range input, including references to unknown
	// varieties/shops supplied by the caller
	ErrValidation = errors.New("validation error")

	// Referenced entity absent
	ErrNotFound = errors.New("not found")

	// Actor is not allowed to mutate the target shop's data
	ErrForbidden = errors.New("forbidden")

	// Inventory errors
	ErrDuplicateInventory = errors.New("inventory already exists for shop and variety")

	// Cart errors
	ErrUnavailable = errors.New("inventory unavailable")
	ErrEmptyCart   = errors.New("cart has no pending lines")

	// Transaction could not complete atomically; callers should
	// re-fetch state rather than retry blindly
	ErrConflict = errors.New("conflict")
)

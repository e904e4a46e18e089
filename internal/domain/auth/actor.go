package auth

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleShopStaff Role = "shop_staff"
)

func (r Role) String() string { return string(r) }

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleShopStaff
}

// Actor is the externally-supplied authorization context. Every
// mutating operation receives one explicitly; there is no ambient
// session state inside the core.
type Actor struct {
	UserID uuid.UUID
	Role   Role
	ShopID *uuid.UUID // set for shop staff only
}

// CanManageShop reports whether the actor may mutate inventory or read
// received orders of the given shop.
func (a Actor) CanManageShop(shopID uuid.UUID) bool {
	return a.Role == RoleShopStaff && a.ShopID != nil && *a.ShopID == shopID
}

//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cane-market/internal/domain/auth"
	"cane-market/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CustomerToken signs a customer access token the way the external
// auth subsystem would, using the test shared secret.
func CustomerToken(t *testing.T, svc *jwt.Service, userID uuid.UUID) string {
	t.Helper()

	token, err := svc.GenerateToken(auth.Actor{
		UserID: userID,
		Role:   auth.RoleCustomer,
	}, time.Hour)
	require.NoError(t, err)

	return token
}

func ShopStaffToken(t *testing.T, svc *jwt.Service, userID, shopID uuid.UUID) string {
	t.Helper()

	token, err := svc.GenerateToken(auth.Actor{
		UserID: userID,
		Role:   auth.RoleShopStaff,
		ShopID: &shopID,
	}, time.Hour)
	require.NoError(t, err)

	return token
}

//go:build e2e

package inventory_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"cane-market/internal/handler/dto/response"
	"cane-market/tests/common/authtest"
	"cane-market/tests/common/dbtest"
	"cane-market/tests/common/httptest"
	"cane-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	shopInventoryURL = "/api/shops/%s/inventory"
	stockURL         = "/api/inventory/%s/stock"
	varietiesURL     = "/api/varieties"
	varietyShopsURL  = "/api/varieties/%s/shops"
	favoritesURL     = "/api/favorites"
)

type InventorySuite struct {
	e2e.SharedSuite
}

func (s *InventorySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestInventorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InventorySuite))
}

func (s *InventorySuite) staffFor(shopID uuid.UUID, email string) string {
	t := s.T()
	staffID := dbtest.CreateTestUser(t, s.DB, email, "shop_staff", &shopID)
	return authtest.ShopStaffToken(t, s.Tokens, staffID, shopID)
}

func inventoryBody(varietyID uuid.UUID, price string, quantity int32, status string) map[string]any {
	return map[string]any{
		"variety_id": varietyID,
		"price":      price,
		"quantity":   quantity,
		"status":     status,
	}
}

// =============================================================================
// TestCreateInventory - explicit add with duplicate protection
// =============================================================================

func (s *InventorySuite) TestCreateInventory() {
	s.Run("Normal case: staff registers a variety for their shop", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		token := s.staffFor(shopID, "staff@example.com")

		url := fmt.Sprintf(shopInventoryURL, shopID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			inventoryBody(varietyID, "120", 50, "available"), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		// The record shows up on the public shop inventory listing
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var records []response.ShopInventoryResponse
		err = httptest.DecodeResponseBody(t, w.Body, &records)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Khon Kaen 3", records[0].VarietyName)
	})

	s.Run("Error case: creating the same pair twice conflicts", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		token := s.staffFor(shopID, "staff@example.com")

		url := fmt.Sprintf(shopInventoryURL, shopID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			inventoryBody(varietyID, "120", 50, "available"), token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			inventoryBody(varietyID, "150", 10, "available"), token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: staff of another shop is rejected", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		otherShopID := dbtest.CreateTestShop(t, s.DB, "Rival Shop")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		token := s.staffFor(otherShopID, "rival@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(shopInventoryURL, shopID),
			inventoryBody(varietyID, "120", 50, "available"), token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: customers cannot write inventory", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		userID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "customer", nil)
		token := authtest.CustomerToken(t, s.Tokens, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(shopInventoryURL, shopID),
			inventoryBody(varietyID, "120", 50, "available"), token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestUpsertAndStock - bulk-seed replace and partial stock updates
// =============================================================================

func (s *InventorySuite) TestUpsertAndStock() {
	s.Run("Normal case: upsert replaces the existing record", func() {
		t := s.T()
		qty := int32(50)
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		existingID := dbtest.CreateTestInventory(t, s.DB, shopID, varietyID, decimal.NewFromInt(120), &qty, "available")
		token := s.staffFor(shopID, "staff@example.com")

		url := fmt.Sprintf(shopInventoryURL, shopID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			inventoryBody(varietyID, "95", 200, "available"), token)
		require.Equal(t, http.StatusOK, w.Code)

		var upserted response.CreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &upserted)
		require.NoError(t, err)
		require.Equal(t, existingID, upserted.ID, "upsert must keep the existing record's id")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var records []response.ShopInventoryResponse
		err = httptest.DecodeResponseBody(t, w.Body, &records)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.True(t, decimal.RequireFromString("95").Equal(records[0].Price))
		require.NotNil(t, records[0].Quantity)
		require.Equal(t, int32(200), *records[0].Quantity)
	})

	s.Run("Normal case: partial stock update flips availability", func() {
		t := s.T()
		qty := int32(50)
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		inventoryID := dbtest.CreateTestInventory(t, s.DB, shopID, varietyID, decimal.NewFromInt(120), &qty, "available")
		token := s.staffFor(shopID, "staff@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(stockURL, inventoryID),
			map[string]any{"status": "out_of_stock"}, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		// The offer listing reflects the new status
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(varietyShopsURL, varietyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var offers []response.InventoryOfferResponse
		err := httptest.DecodeResponseBody(t, w.Body, &offers)
		require.NoError(t, err)
		require.Len(t, offers, 1)
		require.Equal(t, "out_of_stock", offers[0].Status)
	})

	s.Run("Error case: empty stock update is rejected", func() {
		t := s.T()
		qty := int32(50)
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		inventoryID := dbtest.CreateTestInventory(t, s.DB, shopID, varietyID, decimal.NewFromInt(120), &qty, "available")
		token := s.staffFor(shopID, "staff@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(stockURL, inventoryID), map[string]any{}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: unknown inventory id is not found", func() {
		t := s.T()
		shopID := dbtest.CreateTestShop(t, s.DB, "Cane Corner")
		token := s.staffFor(shopID, "staff@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(stockURL, uuid.New()),
			map[string]any{"quantity": 5}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestCatalogSearch - set-membership filters over the variety catalog
// =============================================================================

func (s *InventorySuite) TestCatalogSearch() {
	seedCatalog := func(t *testing.T) (uuid.UUID, uuid.UUID, uuid.UUID) {
		a := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam",
			[]string{"stem borer", "white grub"}, []string{"red rot"})
		b := dbtest.CreateTestVariety(t, s.DB, "LK 92-11", "clay",
			[]string{"aphid"}, []string{"smut"})
		c := dbtest.CreateTestVariety(t, s.DB, "Suphan Buri 50", "loam",
			[]string{"stem borer"}, []string{"wilt"})
		return a, b, c
	}

	s.Run("Normal case: no filters returns the whole catalog", func() {
		t := s.T()
		seedCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var varieties []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 3)
	})

	s.Run("Normal case: filters combine with AND across kinds", func() {
		t := s.T()
		a, _, c := seedCatalog(t)

		// soil loam AND pest stem borer matches two varieties
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			varietiesURL+"?soil_type=loam&pest=stem+borer", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var varieties []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 2)

		got := map[uuid.UUID]bool{}
		for _, v := range varieties {
			got[v.ID] = true
		}
		require.True(t, got[a] && got[c])

		// adding the disease filter narrows to one
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			varietiesURL+"?soil_type=loam&pest=stem+borer&disease=red+rot", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		varieties = nil
		err = httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 1)
		require.Equal(t, a, varieties[0].ID)
	})

	s.Run("Normal case: name matches case-insensitively on substring", func() {
		t := s.T()
		_, b, _ := seedCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL+"?name=lk+92", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var varieties []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 1)
		require.Equal(t, b, varieties[0].ID)
	})

	s.Run("Normal case: Thai-script filter values match", func() {
		t := s.T()
		thai := dbtest.CreateTestVariety(t, s.DB, "อู่ทอง 12", "ดินร่วน",
			[]string{"หนอนกออ้อย"}, []string{"โรคแส้ดำ"})
		dbtest.CreateTestVariety(t, s.DB, "LK 92-11", "clay",
			[]string{"aphid"}, []string{"smut"})

		query := url.Values{}
		query.Set("soil_type", "ดินร่วน")
		query.Set("pest", "หนอนกออ้อย")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL+"?"+query.Encode(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var varieties []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 1)
		require.Equal(t, thai, varieties[0].ID)
		require.Equal(t, "ดินร่วน", varieties[0].SoilType)
		require.ElementsMatch(t, []string{"หนอนกออ้อย"}, varieties[0].Pests)

		// Thai name substring
		query = url.Values{}
		query.Set("name", "อู่ทอง")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL+"?"+query.Encode(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		varieties = nil
		err = httptest.DecodeResponseBody(t, w.Body, &varieties)
		require.NoError(t, err)
		require.Len(t, varieties, 1)
		require.Equal(t, thai, varieties[0].ID)
	})

	s.Run("Normal case: variety detail by id", func() {
		t := s.T()
		a, _, _ := seedCatalog(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL+"/"+a.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var variety response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &variety)
		require.NoError(t, err)
		require.Equal(t, "Khon Kaen 3", variety.Name)
		require.ElementsMatch(t, []string{"stem borer", "white grub"}, variety.Pests)
	})

	s.Run("Error case: unknown variety id is not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, varietiesURL+"/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestFavorites - idempotent two-state toggles
// =============================================================================

func (s *InventorySuite) TestFavorites() {
	s.Run("Normal case: add, list and remove round-trip", func() {
		t := s.T()
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		userID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "customer", nil)
		token := authtest.CustomerToken(t, s.Tokens, userID)

		url := favoritesURL + "/" + varietyID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, favoritesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var favorites []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &favorites)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		require.Equal(t, varietyID, favorites[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, favoritesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		favorites = nil
		err = httptest.DecodeResponseBody(t, w.Body, &favorites)
		require.NoError(t, err)
		require.Empty(t, favorites)
	})

	s.Run("Normal case: both transitions are idempotent", func() {
		t := s.T()
		varietyID := dbtest.CreateTestVariety(t, s.DB, "Khon Kaen 3", "loam", nil, nil)
		userID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "customer", nil)
		token := authtest.CustomerToken(t, s.Tokens, userID)

		url := favoritesURL + "/" + varietyID.String()
		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, token)
			require.Equal(t, http.StatusNoContent, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, favoritesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var favorites []response.VarietyResponse
		err := httptest.DecodeResponseBody(t, w.Body, &favorites)
		require.NoError(t, err)
		require.Len(t, favorites, 1, "duplicate add must not duplicate the favorite")

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
			require.Equal(t, http.StatusNoContent, w.Code)
		}
	})

	s.Run("Error case: favoriting an unknown variety is rejected", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "customer", nil)
		token := authtest.CustomerToken(t, s.Tokens, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			favoritesURL+"/"+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

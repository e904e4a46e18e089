//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cane-market/internal/domain/auth"
	"cane-market/internal/handler/api"
	resdto "cane-market/internal/handler/dto/response"
	"cane-market/internal/pkg/errs"
	"cane-market/internal/usecase/queries"
	"cane-market/tests/common/builder"
	"cane-market/tests/common/httptest"
	commandsmock "cane-market/tests/mock/commands"
	queriesmock "cane-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FavoriteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFavoriteCommands
	mockQueries  *queriesmock.MockFavoriteQueries
	handler      *api.FavoriteHandler
	actor        auth.Actor
}

func (s *FavoriteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFavoriteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFavoriteQueries(s.mockCtrl)
	s.handler = api.NewFavoriteHandler(s.mockCommands, s.mockQueries)
	s.actor = auth.Actor{UserID: uuid.New(), Role: auth.RoleCustomer}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.GET("/favorites", authMiddleware, s.handler.ListFavorites)
	s.router.PUT("/favorites/:varietyId", authMiddleware, s.handler.AddFavorite)
	s.router.DELETE("/favorites/:varietyId", authMiddleware, s.handler.RemoveFavorite)
}

func (s *FavoriteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFavoriteHandlerSuite(t *testing.T) {
	suite.Run(t, new(FavoriteHandlerTestSuite))
}

// ================================================================================
// TestListFavorites
// ================================================================================

func (s *FavoriteHandlerTestSuite) TestListFavorites() {
	url := "/favorites"

	items := []*queries.VarietyView{
		builder.NewVarietyBuilder().BuildView(),
		builder.NewVarietyBuilder().WithName("LK 92-11").BuildView(),
	}

	s.Run("success: returns 200 OK with favorited varieties", func() {
		s.mockQueries.EXPECT().ListFavorites(gomock.Any(), s.actor.UserID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.VarietyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[1].Name, response[1].Name)
	})

	s.Run("success: no favorites yields empty array", func() {
		s.mockQueries.EXPECT().ListFavorites(gomock.Any(), s.actor.UserID).
			Return([]*queries.VarietyView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.VarietyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestAddFavorite
// ================================================================================

func (s *FavoriteHandlerTestSuite) TestAddFavorite() {
	varietyID := uuid.New()
	url := "/favorites/" + varietyID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.actor.UserID, varietyID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: adding twice still returns 204", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.actor.UserID, varietyID).
			Return(nil).Times(2)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
			s.Equal(http.StatusNoContent, rec.Code)
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/favorites/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid variety ID format")
	})

	s.Run("error: 400 Bad Request for unknown variety", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), s.actor.UserID, varietyID).
			Return(errs.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRemoveFavorite
// ================================================================================

func (s *FavoriteHandlerTestSuite) TestRemoveFavorite() {
	varietyID := uuid.New()
	url := "/favorites/" + varietyID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.actor.UserID, varietyID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: removing an absent favorite still returns 204", func() {
		s.mockCommands.EXPECT().Remove(gomock.Any(), s.actor.UserID, varietyID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/favorites/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid variety ID format")
	})
}

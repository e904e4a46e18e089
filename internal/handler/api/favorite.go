package api

import (
	"net/http"

	"cane-market/internal/domain/auth"
	resdto "cane-market/internal/handler/dto/response"
	"cane-market/internal/handler/middleware"
	"cane-market/internal/usecase/commands"
	"cane-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteCommands commands.FavoriteCommands
	favoriteQueries  queries.FavoriteQueries
}

func NewFavoriteHandler(favoriteCommands commands.FavoriteCommands, favoriteQueries queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteCommands: favoriteCommands,
		favoriteQueries:  favoriteQueries,
	}
}

// @Summary List favorites
// @Description List the current user's favorited varieties
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VarietyResponse
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.favoriteQueries.ListFavorites(c.Request.Context(), actor.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVarietyViews(views))
}

// @Summary Add favorite
// @Description Mark a variety as favorite; adding twice is a no-op
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param varietyId path string true "Variety ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /favorites/{varietyId} [put]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	actor, varietyID, ok := h.bindFavoriteTarget(c)
	if !ok {
		return
	}

	if err := h.favoriteCommands.Add(c.Request.Context(), actor.UserID, varietyID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Description Unmark a variety; removing an absent favorite is a no-op
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param varietyId path string true "Variety ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /favorites/{varietyId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	actor, varietyID, ok := h.bindFavoriteTarget(c)
	if !ok {
		return
	}

	if err := h.favoriteCommands.Remove(c.Request.Context(), actor.UserID, varietyID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) bindFavoriteTarget(c *gin.Context) (actor auth.Actor, varietyID uuid.UUID, ok bool) {
	a, exists := middleware.GetActor(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return a, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("varietyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variety ID format",
		})
		return a, uuid.Nil, false
	}

	return a, id, true
}

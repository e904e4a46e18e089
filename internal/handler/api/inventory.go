package api

import (
	"net/http"

	"cane-market/internal/domain/auth"
	reqdto "cane-market/internal/handler/dto/request"
	resdto "cane-market/internal/handler/dto/response"
	"cane-market/internal/handler/middleware"
	"cane-market/internal/usecase/commands"
	"cane-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Add inventory record
// @Description Register a variety in the shop's inventory; fails if the pair already exists
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.CreateInventoryRequest true "Inventory record"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /shops/{shopId}/inventory [post]
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	actor, shopID, req, ok := h.bindInventoryWrite(c)
	if !ok {
		return
	}

	id, err := h.inventoryCommands.Create(c.Request.Context(), actor, req.ToInput(shopID))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Upsert inventory record
// @Description Create the pair or replace price, quantity and status of the existing record
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.CreateInventoryRequest true "Inventory record"
// @Success 200 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /shops/{shopId}/inventory [put]
func (h *InventoryHandler) UpsertInventory(c *gin.Context) {
	actor, shopID, req, ok := h.bindInventoryWrite(c)
	if !ok {
		return
	}

	id, err := h.inventoryCommands.Upsert(c.Request.Context(), actor, req.ToInput(shopID))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CreatedResponse{ID: id})
}

// @Summary Update stock
// @Description Partially update quantity and/or status of an inventory record
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory record ID"
// @Param request body reqdto.UpdateStockRequest true "Stock update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id}/stock [patch]
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inventory ID format",
		})
		return
	}

	var req reqdto.UpdateStockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inventoryCommands.UpdateStock(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List shops selling a variety
// @Description List every shop's offer for the given variety with price and availability
// @Tags inventory
// @Produce json
// @Param id path string true "Variety ID"
// @Success 200 {array} resdto.InventoryOfferResponse
// @Failure 400 {object} map[string]string
// @Router /varieties/{id}/shops [get]
func (h *InventoryHandler) ListShopsByVariety(c *gin.Context) {
	varietyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variety ID format",
		})
		return
	}

	views, err := h.inventoryQueries.ListByVariety(c.Request.Context(), varietyID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryOfferViews(views))
}

// @Summary List a shop's inventory
// @Description List every inventory record of the shop joined with variety display data
// @Tags inventory
// @Produce json
// @Param shopId path string true "Shop ID"
// @Success 200 {array} resdto.ShopInventoryResponse
// @Failure 400 {object} map[string]string
// @Router /shops/{shopId}/inventory [get]
func (h *InventoryHandler) ListShopInventory(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shop ID format",
		})
		return
	}

	views, err := h.inventoryQueries.ListByShop(c.Request.Context(), shopID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromShopInventoryViews(views))
}

func (h *InventoryHandler) bindInventoryWrite(c *gin.Context) (auth.Actor, uuid.UUID, reqdto.CreateInventoryRequest, bool) {
	var req reqdto.CreateInventoryRequest

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return auth.Actor{}, uuid.Nil, req, false
	}

	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shop ID format",
		})
		return auth.Actor{}, uuid.Nil, req, false
	}

	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return auth.Actor{}, uuid.Nil, req, false
	}

	return actor, shopID, req, true
}

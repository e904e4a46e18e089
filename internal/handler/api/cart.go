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

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Get cart
// @Description List the current user's pending cart lines
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CartLineResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.cartQueries.ListPendingForUser(c.Request.Context(), actor.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLineViews(views))
}

// @Summary Add to cart
// @Description Add a shop's variety to the cart; an existing pending line for the same pair absorbs the quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Cart line"
// @Success 201 {object} resdto.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/lines [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddToCartRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.AddToCart(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCartLineView(view))
}

// @Summary Update cart line quantity
// @Description Set the quantity of a pending cart line; minimum is 1, remove the line instead of zeroing it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Param request body reqdto.UpdateCartQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/lines/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	actor, lineID, ok := h.bindLineTarget(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCartQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.UpdateQuantity(c.Request.Context(), actor, lineID, req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLineView(view))
}

// @Summary Remove cart line
// @Description Remove a pending cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/lines/{id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	actor, lineID, ok := h.bindLineTarget(c)
	if !ok {
		return
	}

	if err := h.cartCommands.RemoveLine(c.Request.Context(), actor, lineID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Checkout
// @Description Atomically mark every pending cart line paid; all lines settle or none do
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.cartCommands.Checkout(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary List orders received
// @Description List the shop's paid cart lines with buyer and variety data, newest first
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /shops/{shopId}/orders [get]
func (h *CartHandler) ListShopOrders(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shop ID format",
		})
		return
	}

	views, err := h.cartQueries.ListPaidForShop(c.Request.Context(), actor, shopID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

func (h *CartHandler) bindLineTarget(c *gin.Context) (actor auth.Actor, lineID uuid.UUID, ok bool) {
	a, exists := middleware.GetActor(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return a, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart line ID format",
		})
		return a, uuid.Nil, false
	}

	return a, id, true
}

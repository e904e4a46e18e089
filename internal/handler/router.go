package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cane-market/internal/handler/api"
	"cane-market/internal/handler/middleware"
	"cane-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	inventoryHandler *api.InventoryHandler,
	cartHandler *api.CartHandler,
	favoriteHandler *api.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, inventoryHandler, cartHandler, favoriteHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	inventoryHandler *api.InventoryHandler,
	cartHandler *api.CartHandler,
	favoriteHandler *api.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Catalog browse is anonymous
		varieties := apiGroup.Group("/varieties")
		{
			addRoutes(varieties, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.SearchVarieties},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetVariety},
				{Method: http.MethodGet, Path: "/:id/shops", Handler: inventoryHandler.ListShopsByVariety},
			})
		}

		shops := apiGroup.Group("/shops")
		{
			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "/:shopId/inventory", Handler: inventoryHandler.ListShopInventory},
			})

			staff := shops.Group("")
			staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireShopStaff())
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "/:shopId/inventory", Handler: inventoryHandler.CreateInventory},
				{Method: http.MethodPut, Path: "/:shopId/inventory", Handler: inventoryHandler.UpsertInventory},
				{Method: http.MethodGet, Path: "/:shopId/orders", Handler: cartHandler.ListShopOrders},
			})
		}

		inventoryGroup := apiGroup.Group("/inventory")
		inventoryGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireShopStaff())
		{
			addRoutes(inventoryGroup, []route{
				{Method: http.MethodPatch, Path: "/:id/stock", Handler: inventoryHandler.UpdateStock},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPost, Path: "/lines", Handler: cartHandler.AddToCart},
				{Method: http.MethodPatch, Path: "/lines/:id", Handler: cartHandler.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/lines/:id", Handler: cartHandler.RemoveLine},
				{Method: http.MethodPost, Path: "/checkout", Handler: cartHandler.Checkout},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(authMiddleware.RequireAuth())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: favoriteHandler.ListFavorites},
				{Method: http.MethodPut, Path: "/:varietyId", Handler: favoriteHandler.AddFavorite},
				{Method: http.MethodDelete, Path: "/:varietyId", Handler: favoriteHandler.RemoveFavorite},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

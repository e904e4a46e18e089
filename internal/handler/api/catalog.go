package api

import (
	"net/http"

	reqdto "cane-market/internal/handler/dto/request"
	resdto "cane-market/internal/handler/dto/response"
	"cane-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Search varieties
// @Description Search the variety catalog by soil type, pest, disease and name filters; all filters are optional and combine with AND
// @Tags catalog
// @Produce json
// @Param soil_type query []string false "Soil type (repeatable, exact match)"
// @Param pest query []string false "Pest name (repeatable, any overlap)"
// @Param disease query []string false "Disease name (repeatable, any overlap)"
// @Param name query string false "Name substring, case-insensitive"
// @Success 200 {array} resdto.VarietyResponse
// @Failure 400 {object} map[string]string
// @Router /varieties [get]
func (h *CatalogHandler) SearchVarieties(c *gin.Context) {
	var query reqdto.SearchVarietiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.catalogQueries.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVarietyViews(views))
}

// @Summary Get variety
// @Description Get a single catalog variety by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Variety ID"
// @Success 200 {object} resdto.VarietyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /varieties/{id} [get]
func (h *CatalogHandler) GetVariety(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variety ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetVariety(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVarietyView(view))
}

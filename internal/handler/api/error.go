package api

import (
	"errors"
	"net/http"

	"cane-market/internal/handler/httperr"
	"cane-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps usecase sentinels to HTTP statuses. Handlers
// never invent their own mapping; one table keeps the surface uniform.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrDuplicateInventory):
		httperr.AbortWithError(c, http.StatusConflict, err, "Inventory already exists for this variety", nil)
	case errors.Is(err, errs.ErrUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Variety is not available at this shop", nil)
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting concurrent update", nil)
	case errors.Is(err, errs.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package handlers

import (
	"net/http"

	"horeca_backend/internal/services"
	"horeca_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the shared product reference data.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetProducts lists the full product catalog, sorted by name.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.GetProducts()
	if err != nil {
		utils.LogError(err, "GetProducts: Error from catalogService.GetProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetCategories lists all categories, sorted by name.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		utils.LogError(err, "GetCategories: Error from catalogService.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve categories.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetSubcategories lists all subcategories, sorted by name.
func (h *CatalogHandler) GetSubcategories(c *gin.Context) {
	subcategories, err := h.catalogService.GetSubcategories()
	if err != nil {
		utils.LogError(err, "GetSubcategories: Error from catalogService.GetSubcategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve subcategories.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

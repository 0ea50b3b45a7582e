package handlers

import (
	"net/http"

	"horeca_backend/internal/services"
	"horeca_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SalesHandler serves the derived menu statistics endpoints.
type SalesHandler struct {
	menuService services.MenuService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(ms services.MenuService) *SalesHandler {
	return &SalesHandler{menuService: ms}
}

// GetSalesStats returns per-item sold counts for the fixed reference year
// and the year before it.
func (h *SalesHandler) GetSalesStats(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	stats, err := h.menuService.GetSalesStats(businessID, services.FixedStatsYear)
	if err != nil {
		utils.LogError(err, "GetSalesStats: Error from menuService.GetSalesStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve sales statistics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLastYearSalesStats windows on the year before the current one and sorts
// by menu item id.
func (h *SalesHandler) GetLastYearSalesStats(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	stats, err := h.menuService.GetLastYearSalesStats(businessID)
	if err != nil {
		utils.LogError(err, "GetLastYearSalesStats: Error from menuService.GetLastYearSalesStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve sales statistics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetProductsNotOnMenu lists catalog products the business has not listed yet.
func (h *SalesHandler) GetProductsNotOnMenu(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	products, err := h.menuService.GetProductsNotOnMenu(businessID)
	if err != nil {
		utils.LogError(err, "GetProductsNotOnMenu: Error from menuService.GetProductsNotOnMenu")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetMenuCounts returns the per-category composition of the menu.
func (h *SalesHandler) GetMenuCounts(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	counts, err := h.menuService.GetMenuCounts(businessID)
	if err != nil {
		utils.LogError(err, "GetMenuCounts: Error from menuService.GetMenuCounts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve menu counts.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, counts)
}

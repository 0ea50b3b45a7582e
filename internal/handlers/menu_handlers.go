package handlers

import (
	"errors"
	"net/http"

	"horeca_backend/internal/middleware"
	"horeca_backend/internal/services"
	"horeca_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

func tenantID(c *gin.Context) (int64, bool) {
	businessID, ok := middleware.BusinessIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated.", ""))
		return 0, false
	}
	return businessID, true
}

// GetMenuItems lists the business's menu as flattened views.
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	items, err := h.menuService.GetMenu(businessID)
	if err != nil {
		utils.LogError(err, "GetMenuItems: Error from menuService.GetMenu")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve menu items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem puts a catalog product on the menu.
func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	var req services.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddMenuItem: Failed to bind JSON")
		utils.RespondValidationFailed(c)
		return
	}

	insertID, err := h.menuService.AddItem(businessID, req)
	if err != nil {
		utils.LogError(err, "AddMenuItem: Error from menuService.AddItem")
		if errors.Is(err, services.ErrProductOnMenu) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Product is already on the menu.", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insertId": insertID})
}

// UpdatePrices applies a batch of price changes. The batch is atomic: a
// failure anywhere rolls back every change.
func (h *MenuHandler) UpdatePrices(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	var req services.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePrices: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Payload must contain an updates array.", ""))
		return
	}

	if err := h.menuService.UpdatePrices(businessID, req.Updates); err != nil {
		utils.LogError(err, "UpdatePrices: Error from menuService.UpdatePrices")
		if errors.Is(err, services.ErrEmptyBatch) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Payload must contain an updates array.", ""))
		} else {
			// All-or-nothing: nothing was applied.
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update prices.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteMenuItem removes one menu item and its sales.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	businessID, ok := tenantID(c)
	if !ok {
		return
	}

	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid menu item id.", ""))
		return
	}

	if err := h.menuService.DeleteItem(businessID, itemID); err != nil {
		utils.LogError(err, "DeleteMenuItem: Error from menuService.DeleteItem")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

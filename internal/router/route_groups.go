package router

import (
	"horeca_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes registers the endpoints reachable without a session.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/complete-onboarding", authHandler.CompleteOnboarding)
	group.POST("/login", authHandler.Login)
}

// SetupSessionRoutes registers the session identity endpoints.
func SetupSessionRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/user", authHandler.GetCurrentUser)
	group.POST("/logout", authHandler.Logout)
	group.GET("/business-info", authHandler.GetBusinessInfo)
}

// SetupMenuRoutes registers the tenant-scoped menu item CRUD endpoints.
func SetupMenuRoutes(group *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	group.GET("/menu-items", menuHandler.GetMenuItems)
	group.POST("/menu-items", menuHandler.AddMenuItem)
	group.PATCH("/menu-items", menuHandler.UpdatePrices)
	group.DELETE("/menu-items/:id", menuHandler.DeleteMenuItem)
}

// SetupCatalogRoutes registers the shared reference data endpoints.
func SetupCatalogRoutes(group *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	group.GET("/products", catalogHandler.GetProducts)
	group.GET("/categories", catalogHandler.GetCategories)
	group.GET("/subcategories", catalogHandler.GetSubcategories)
}

// SetupSalesRoutes registers the derived statistics endpoints.
func SetupSalesRoutes(group *gin.RouterGroup, salesHandler *handlers.SalesHandler) {
	group.GET("/sales", salesHandler.GetSalesStats)
	group.GET("/sales/last-year", salesHandler.GetLastYearSalesStats)
	group.GET("/items-not-on-menu", salesHandler.GetProductsNotOnMenu)
	group.GET("/menu-counts", salesHandler.GetMenuCounts)
}

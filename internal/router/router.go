package router

import (
	"database/sql"

	"horeca_backend/internal/handlers"
	"horeca_backend/internal/middleware"
	"horeca_backend/internal/repositories"
	"horeca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	businessRepo := repositories.NewBusinessRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	menuRepo := repositories.NewMenuRepository(db)

	// Initialize Services
	authService := services.NewAuthService(businessRepo, db)
	catalogService := services.NewCatalogService(catalogRepo)
	menuService := services.NewMenuService(menuRepo, catalogRepo, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	menuHandler := handlers.NewMenuHandler(menuService)
	salesHandler := handlers.NewSalesHandler(menuService)

	api := engine.Group("/api")

	SetupPublicAuthRoutes(api, authHandler)

	authenticated := api.Group("")
	authenticated.Use(middleware.SessionAuthMiddleware())
	{
		SetupSessionRoutes(authenticated, authHandler)
		SetupMenuRoutes(authenticated, menuHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
		SetupSalesRoutes(authenticated, salesHandler)
	}
}

// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupItemRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := r.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// SetupItemRoutes sets up catalog related routes
func SetupItemRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	itemHandler := handlers.NewItemHandler(db, cfg)

	items := r.Group("/items")
	{
		// Browsing is public
		items.GET("", itemHandler.List)
		items.GET("/:id", itemHandler.Get)

		// Mutations require authentication; there is no ownership
		// notion, any authenticated user may change the catalog
		protected := items.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("", itemHandler.Create)
			protected.PUT("/:id", itemHandler.Update)
			protected.DELETE("/:id", itemHandler.Delete)
		}
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, cfg)

	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/add", cartHandler.AddItem)
		cart.POST("/remove", cartHandler.RemoveItem)
	}
}

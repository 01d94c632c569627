package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/freshmarket-io/marketplace-api/controllers/cart"
	productControllers "github.com/freshmarket-io/marketplace-api/controllers/product"
	userControllers "github.com/freshmarket-io/marketplace-api/controllers/user"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/store"
)

// SetupUserRoutes registers the JWT-protected profile, cart, and product
// endpoints.
func SetupUserRoutes(r *gin.Engine, s *store.Store, jwtSecret string) {
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(jwtSecret))
	{
		// ──────────────── User Profile ────────────────
		authed.GET("/user", userControllers.GetUser(s))
		authed.PUT("/user", userControllers.UpdateUser(s))

		// ──────────────── Shopping Cart ────────────────
		authed.GET("/cart", cartControllers.GetUserCart(s))
		authed.POST("/cart", cartControllers.AddCartItem(s))
		authed.DELETE("/cart/:item_id", cartControllers.DeleteCartItem(s))

		// ──────────────── Product Catalog ────────────────
		authed.GET("/products", productControllers.GetProducts(s))
		authed.POST("/products", productControllers.CreateProduct(s))
		authed.GET("/products/export", productControllers.ExportProductsToExcel(s))
		authed.GET("/products/:id", productControllers.GetProductByID(s))
		authed.PATCH("/products/:id", productControllers.UpdateProduct(s))
	}
}

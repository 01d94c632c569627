package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/freshmarket-io/marketplace-api/controllers/product"
	userControllers "github.com/freshmarket-io/marketplace-api/controllers/user"
	"github.com/freshmarket-io/marketplace-api/store"
)

// SetupAuthRoutes registers the endpoints reachable without a token:
// registration, login, and the read-only category listing.
func SetupAuthRoutes(r *gin.Engine, s *store.Store, jwtSecret string) {
	r.POST("/register", userControllers.Register(s))
	r.POST("/login", userControllers.Login(s, jwtSecret))
	r.GET("/categories", productControllers.GetAllCategories(s))
}

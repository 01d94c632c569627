package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/store"
)

// SetupRoutes is the single entry point that wires up the public, user,
// product, and order route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, jwtSecret string) {
	// Public routes (no middleware)
	SetupAuthRoutes(r, s, jwtSecret)

	// JWT-protected routes
	SetupUserRoutes(r, s, jwtSecret)
	SetupOrderRoutes(r, s, jwtSecret)
}

package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/freshmarket-io/marketplace-api/controllers/order"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/store"
)

// SetupOrderRoutes registers order placement, the caller-scoped listing,
// and the live order feed.
func SetupOrderRoutes(r *gin.Engine, s *store.Store, jwtSecret string) {
	feed := orderControllers.NewOrderFeed()

	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(jwtSecret))
	{
		orders.POST("", orderControllers.PlaceOrder(s, feed))
		orders.GET("", orderControllers.ListOrders(s))
		orders.GET("/ws", feed.Handler())
	}
}

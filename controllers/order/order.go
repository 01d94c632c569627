package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/store"
)

type PlaceOrderInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

// POST /orders
func PlaceOrder(s *store.Store, feed *OrderFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		order, err := s.Orders.Create(userID, input.ProductID, input.Quantity)
		if err != nil {
			if err == store.ErrNotFound {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Product does not exist")
				return
			}
			apierr.Store(c, err, "Product not found")
			return
		}

		if feed != nil {
			feed.Publish(order)
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func ListOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		orders, err := s.Orders.ListByUser(userID)
		if err != nil {
			apierr.Store(c, err, "Orders not found")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

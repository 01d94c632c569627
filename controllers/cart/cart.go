package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/store"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// GET /cart
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		cart, err := s.Carts.GetWithItems(userID)
		if err != nil {
			apierr.Store(c, err, "Cart not found")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}

		item, err := s.Carts.AddItem(userID, input.ProductID, input.Quantity)
		if err != nil {
			if err == store.ErrNotFound {
				// Unknown product is a validation failure of the request body,
				// not a missing resource.
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Product does not exist")
				return
			}
			apierr.Store(c, err, "Cart not found")
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /cart/:item_id
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid item id")
			return
		}

		if err := s.Carts.RemoveItem(userID, uint(itemID)); err != nil {
			apierr.Store(c, err, "Cart item not found")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

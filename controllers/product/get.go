package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/store"
)

// GetProductByID returns a single product.
// GET /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid product ID")
			return
		}

		product, err := s.Products.GetByID(uint(id))
		if err != nil {
			apierr.Store(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

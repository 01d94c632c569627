package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/store"
)

// GetProducts lists the whole catalog, newest first.
// GET /products
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.Products.List()
		if err != nil {
			apierr.Store(c, err, "Products not found")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

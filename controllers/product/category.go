package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/store"
)

// GetAllCategories returns every category. The catalog taxonomy is managed
// out of band, so the API surface for categories is read-only.
// GET /categories
func GetAllCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.Categories.List()
		if err != nil {
			apierr.Store(c, err, "Categories not found")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

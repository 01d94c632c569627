package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/models"
	"github.com/freshmarket-io/marketplace-api/store"
)

const dateLayout = "2006-01-02"

type CreateProductInput struct {
	Name            string          `json:"name" binding:"required,max=50"`
	Description     string          `json:"description" binding:"max=800"`
	Composition     string          `json:"composition" binding:"max=400"`
	Discount        int             `json:"discount" binding:"min=0,max=100"`
	Quantity        int             `json:"quantity" binding:"min=0"`
	Weight          float64         `json:"weight"`
	Price           decimal.Decimal `json:"price"`
	ManufactureDate string          `json:"manufacture_date" binding:"required"`
	ExpiryDate      string          `json:"expiry_date" binding:"required"`
	CategoryID      uint            `json:"category_id" binding:"required"`
}

// CreateProduct registers a new product owned by the authenticated seller.
// POST /products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}
		if input.Price.IsNegative() {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Price must not be negative")
			return
		}

		manufactured, err := time.Parse(dateLayout, input.ManufactureDate)
		if err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid manufacture_date, expected YYYY-MM-DD")
			return
		}
		expires, err := time.Parse(dateLayout, input.ExpiryDate)
		if err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid expiry_date, expected YYYY-MM-DD")
			return
		}

		if _, err := s.Categories.GetByID(input.CategoryID); err != nil {
			if err == store.ErrNotFound {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Category does not exist")
				return
			}
			apierr.Store(c, err, "Category not found")
			return
		}

		product := models.Product{
			Name:            input.Name,
			Description:     input.Description,
			Composition:     input.Composition,
			Discount:        input.Discount,
			Quantity:        input.Quantity,
			Weight:          input.Weight,
			Price:           input.Price.Round(2),
			ManufactureDate: manufactured,
			ExpiryDate:      expires,
			SellerID:        userID,
			CategoryID:      input.CategoryID,
		}
		if err := s.Products.Create(&product); err != nil {
			apierr.Store(c, err, "Product not found")
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

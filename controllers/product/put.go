package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/store"
)

type UpdateProductInput struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Composition     *string          `json:"composition"`
	Discount        *int             `json:"discount"`
	Quantity        *int             `json:"quantity"`
	Weight          *float64         `json:"weight"`
	Price           *decimal.Decimal `json:"price"`
	ManufactureDate *string          `json:"manufacture_date"`
	ExpiryDate      *string          `json:"expiry_date"`
	CategoryID      *uint            `json:"category_id"`
}

// UpdateProduct partially updates a product owned by the caller. Absent
// fields are left untouched.
// PATCH /products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid product ID")
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Composition != nil {
			updates["composition"] = *input.Composition
		}
		if input.Discount != nil {
			if *input.Discount < 0 || *input.Discount > 100 {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Discount must be between 0 and 100")
				return
			}
			updates["discount"] = *input.Discount
		}
		if input.Quantity != nil {
			if *input.Quantity < 0 {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Quantity must not be negative")
				return
			}
			updates["quantity"] = *input.Quantity
		}
		if input.Weight != nil {
			updates["weight"] = *input.Weight
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Price must not be negative")
				return
			}
			updates["price"] = input.Price.Round(2)
		}
		if input.ManufactureDate != nil {
			t, err := time.Parse(dateLayout, *input.ManufactureDate)
			if err != nil {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid manufacture_date, expected YYYY-MM-DD")
				return
			}
			updates["manufacture_date"] = t
		}
		if input.ExpiryDate != nil {
			t, err := time.Parse(dateLayout, *input.ExpiryDate)
			if err != nil {
				apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid expiry_date, expected YYYY-MM-DD")
				return
			}
			updates["expiry_date"] = t
		}
		if input.CategoryID != nil {
			if _, err := s.Categories.GetByID(*input.CategoryID); err != nil {
				if err == store.ErrNotFound {
					apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Category does not exist")
					return
				}
				apierr.Store(c, err, "Category not found")
				return
			}
			updates["category_id"] = *input.CategoryID
		}

		product, err := s.Products.PartialUpdate(uint(id), userID, updates)
		if err != nil {
			apierr.Store(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/store"
)

// ExportProductsToExcel streams the catalog as a spreadsheet download.
// GET /products/export
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.Products.List()
		if err != nil {
			apierr.Store(c, err, "Products not found")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apierr.JSON(c, http.StatusInternalServerError, apierr.KindInternal, "Failed to create sheet")
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Composition", "Discount",
			"Quantity", "Weight", "Price", "EffectivePrice",
			"ManufactureDate", "ExpiryDate", "SellerID", "CategoryID",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Composition)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.Weight)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.EffectivePrice.String())
			row.AddCell().SetValue(p.ManufactureDate.Format(dateLayout))
			row.AddCell().SetValue(p.ExpiryDate.Format(dateLayout))
			row.AddCell().SetValue(p.SellerID)
			row.AddCell().SetValue(p.CategoryID)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			apierr.JSON(c, http.StatusInternalServerError, apierr.KindInternal, "Failed to write spreadsheet")
			return
		}
	}
}

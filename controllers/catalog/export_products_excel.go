package catalogControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/models"
)

// ExportProductsToExcel streams the catalog as an .xlsx download for
// back-office review.
// GET /catalog/products/export
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := preloadProduct(db).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "BasePrice", "Taxed", "TaxGroup",
			"Sizes", "Types", "Portions", "ToppingGroups", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.BasePrice)
			row.AddCell().SetValue(p.Taxed)
			if p.TaxGroup != nil {
				row.AddCell().SetValue(p.TaxGroup.Name)
			} else {
				row.AddCell().SetValue("")
			}

			var sizes []string
			for _, s := range p.Sizes {
				sizes = append(sizes, s.Name)
			}
			row.AddCell().SetValue(strings.Join(sizes, ","))

			var types []string
			for _, t := range p.Types {
				types = append(types, t.Name)
			}
			row.AddCell().SetValue(strings.Join(types, ","))

			var portions []string
			for _, pt := range p.Portions {
				portions = append(portions, pt.Name)
			}
			row.AddCell().SetValue(strings.Join(portions, ","))

			var groups []string
			for _, g := range p.ToppingGroups {
				groups = append(groups, g.Name)
			}
			row.AddCell().SetValue(strings.Join(groups, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

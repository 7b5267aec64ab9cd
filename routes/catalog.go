package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/haleemzahid/pos-ticket-api/controllers/catalog"
	"github.com/haleemzahid/pos-ticket-api/middleware"
)

// SetupCatalogRoutes registers all "/catalog/*" endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/products", catalogControllers.GetProducts(db))
		catalog.GET("/products/:id", catalogControllers.GetProductByID(db))
		catalog.GET("/discounts", catalogControllers.GetDiscounts(db))
		catalog.GET("/service-methods", catalogControllers.GetServiceMethods(db))
		catalog.GET("/affixes", catalogControllers.GetAffixes(db))

		// Back-office export, register-key protected. Lives outside
		// /products to keep the :id wildcard unambiguous.
		catalog.GET("/export/products",
			middleware.ValidateRegisterKey,
			catalogControllers.ExportProductsToExcel(db))
	}
}

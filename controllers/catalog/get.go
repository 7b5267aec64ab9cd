package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/models"
)

// preloadProduct attaches every option set a terminal needs before the
// product can be added to a ticket.
func preloadProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("TaxGroup").
		Preload("Sizes").
		Preload("Types").
		Preload("Portions").
		Preload("ToppingGroups").
		Preload("ToppingGroups.Toppings")
}

// GetProducts returns the full catalog with option sets resolved.
// GET /catalog/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := preloadProduct(db).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single fully-resolved product.
// GET /catalog/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := preloadProduct(db).First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetDiscounts returns the discount list; item-only and whole-invoice
// discounts are distinguished by the whole_invoice flag.
// GET /catalog/discounts
func GetDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discounts []models.Discount
		if err := db.Order("name").Find(&discounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discounts"})
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

// GetServiceMethods returns the fulfilment methods.
// GET /catalog/service-methods
func GetServiceMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.ServiceMethod
		if err := db.Order("id").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// GetAffixes returns the topping qualifiers ("No", "Extra", ...).
// GET /catalog/affixes
func GetAffixes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var affixes []models.Affix
		if err := db.Order("id").Find(&affixes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve affixes"})
			return
		}
		c.JSON(http.StatusOK, affixes)
	}
}

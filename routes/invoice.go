package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	invoiceControllers "github.com/haleemzahid/pos-ticket-api/controllers/invoice"
	ticketControllers "github.com/haleemzahid/pos-ticket-api/controllers/ticket"
)

// SetupInvoiceRoutes registers the hold/recall endpoints.
func SetupInvoiceRoutes(r *gin.Engine, db *gorm.DB, store *ticketControllers.Store) {
	r.POST("/tickets/:terminal/hold", invoiceControllers.HoldOrder(db, store))
	r.POST("/tickets/:terminal/recall/:ref", invoiceControllers.RecallInvoice(db, store))
	r.GET("/invoices/held", invoiceControllers.ListHeldInvoices(db))
}

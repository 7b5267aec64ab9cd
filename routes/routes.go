package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketControllers "github.com/haleemzahid/pos-ticket-api/controllers/ticket"
)

// SetupRoutes is the single entry-point that wires up the catalog,
// ticket and invoice route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *ticketControllers.Store) {
	// Catalog reads feeding the terminals
	SetupCatalogRoutes(r, db)

	// Per-terminal order sessions
	SetupTicketRoutes(r, db, store)

	// Hold / recall
	SetupInvoiceRoutes(r, db, store)
}

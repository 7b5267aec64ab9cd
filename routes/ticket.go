package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketControllers "github.com/haleemzahid/pos-ticket-api/controllers/ticket"
)

// SetupTicketRoutes registers all "/tickets/:terminal/*" endpoints.
// Every mutation goes through the session reducer; the handlers only
// resolve catalog rows and build commands.
func SetupTicketRoutes(r *gin.Engine, db *gorm.DB, store *ticketControllers.Store) {
	tickets := r.Group("/tickets/:terminal")
	{
		tickets.GET("", ticketControllers.GetTicket(store))

		// ──────────────── Cart lines ────────────────
		tickets.POST("/items", ticketControllers.AddItem(db, store))
		tickets.POST("/items/:itemID/edit", ticketControllers.EditItem(store))
		tickets.POST("/items/:itemID/duplicate", ticketControllers.DuplicateItem(store))
		tickets.POST("/items/:itemID/special-requests", ticketControllers.AddSpecialRequest(store))
		tickets.PUT("/items/:itemID/quantity", ticketControllers.SetQuantity(store))
		tickets.PUT("/items/:itemID/tax-free", ticketControllers.SetItemTaxFree(store))
		tickets.PUT("/items/:itemID/discount", ticketControllers.SetItemDiscount(db, store))
		tickets.DELETE("/items/:itemID", ticketControllers.RemoveItem(store))
		tickets.PUT("/selection", ticketControllers.SelectItem(store))

		// ──────────────── Modifier flow ────────────────
		tickets.POST("/confirm", ticketControllers.Confirm(store))
		tickets.POST("/cancel-edit", ticketControllers.CancelEdit(store))
		tickets.DELETE("/editing", ticketControllers.DeleteEditing(store))
		tickets.PUT("/editing/size", ticketControllers.SetSize(store))
		tickets.PUT("/editing/type", ticketControllers.SetType(store))
		tickets.PUT("/editing/portions", ticketControllers.SetPortions(db, store))
		tickets.PUT("/editing/toppings", ticketControllers.SetToppings(db, store))
		tickets.PUT("/editing/group", ticketControllers.SelectGroup(store))

		// ──────────────── Session flags ────────────────
		tickets.PUT("/invoice-discount", ticketControllers.SetInvoiceDiscount(db, store))
		tickets.PUT("/service-method", ticketControllers.SetServiceMethod(db, store))
		tickets.PUT("/tax-exempt", ticketControllers.SetTaxExempt(store))
		tickets.PUT("/view", ticketControllers.ShowView(store))
		tickets.POST("/cancel", ticketControllers.CancelOrder(store))
	}
}

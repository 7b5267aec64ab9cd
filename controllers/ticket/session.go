package ticketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// Session-level flag handlers: invoice discount, service method, tax
// exemption and view switching.

// SetInvoiceDiscount attaches a whole-invoice discount by value, or
// clears it when discount_id is null.
// PUT /tickets/:terminal/invoice-discount
func SetInvoiceDiscount(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		var discount *ticket.DiscountValue
		if req.DiscountID != nil {
			discount = resolveDiscount(db, *req.DiscountID, true)
			if discount == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not an invoice discount"})
				return
			}
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetInvoiceDiscount{Discount: discount})
			respond(c, ts)
		})
	}
}

type SetServiceMethodRequest struct {
	MethodID uint `json:"method_id" binding:"required"`
}

// SetServiceMethod records how the order is fulfilled.
// PUT /tickets/:terminal/service-method
func SetServiceMethod(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetServiceMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		var method models.ServiceMethod
		if err := db.First(&method, req.MethodID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service method does not exist"})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetServiceMethod{
				Method: &ticket.ServiceMethodValue{MethodID: method.ID, Name: method.Name},
			})
			respond(c, ts)
		})
	}
}

type SetTaxExemptRequest struct {
	TaxExempt *bool `json:"tax_exempt" binding:"required"`
}

// SetTaxExempt flips the invoice-level exemption; pricing recomputes
// on the next read.
// PUT /tickets/:terminal/tax-exempt
func SetTaxExempt(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetTaxExemptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetTaxExempt{Exempt: *req.TaxExempt})
			respond(c, ts)
		})
	}
}

type ShowViewRequest struct {
	View string `json:"view" binding:"required"`
}

// ShowView switches between menu, discount and payment. Ignored while
// an item is under configuration.
// PUT /tickets/:terminal/view
func ShowView(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShowViewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.ShowView{View: ticket.View(req.View)})
			respond(c, ts)
		})
	}
}

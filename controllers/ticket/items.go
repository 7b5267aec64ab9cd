package ticketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// Item-scoped handlers usable outside the modifier flow. Stale item
// ids are tolerated: the reducer treats them as no-ops and the handler
// returns the unchanged session, since a UI reference can race a
// removal.

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity changes a line's quantity; dropping below 1 removes the
// line entirely.
// PUT /tickets/:terminal/items/:itemID/quantity
func SetQuantity(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetQuantity{ItemID: itemID, Quantity: req.Quantity})
			respond(c, ts)
		})
	}
}

type SpecialRequestInput struct {
	Text  string `json:"text" binding:"required"`
	Price string `json:"price"`
}

// AddSpecialRequest appends a free-text extra. The price stays a
// string; the pricing engine parses it and treats junk as 0.
// POST /tickets/:terminal/items/:itemID/special-requests
func AddSpecialRequest(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SpecialRequestInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.AddSpecialRequest{
				ItemID: itemID,
				Text:   req.Text,
				Price:  req.Price,
			})
			respond(c, ts)
		})
	}
}

type SetTaxFreeRequest struct {
	TaxFree *bool `json:"tax_free" binding:"required"`
}

// SetItemTaxFree overrides taxation for one line.
// PUT /tickets/:terminal/items/:itemID/tax-free
func SetItemTaxFree(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetTaxFreeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetItemTaxFree{ItemID: itemID, TaxFree: *req.TaxFree})
			respond(c, ts)
		})
	}
}

type SetDiscountRequest struct {
	DiscountID *uint `json:"discount_id"`
}

// SetItemDiscount attaches an item-scope discount by value, or clears
// it when discount_id is null.
// PUT /tickets/:terminal/items/:itemID/discount
func SetItemDiscount(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		var discount *ticket.DiscountValue
		if req.DiscountID != nil {
			discount = resolveDiscount(db, *req.DiscountID, false)
			if discount == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not an item discount"})
				return
			}
		}
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SetItemDiscount{ItemID: itemID, Discount: discount})
			respond(c, ts)
		})
	}
}

// DuplicateItem clones a line under a new id.
// POST /tickets/:terminal/items/:itemID/duplicate
func DuplicateItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.DuplicateItem{ItemID: itemID})
			respond(c, ts)
		})
	}
}

// RemoveItem deletes a line; the highlight is cleared if it pointed at
// the removed line.
// DELETE /tickets/:terminal/items/:itemID
func RemoveItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.RemoveItem{ItemID: itemID})
			respond(c, ts)
		})
	}
}

type SelectItemRequest struct {
	ItemID string `json:"item_id"`
}

// SelectItem highlights a line for item-scoped actions; an empty id
// clears the highlight.
// PUT /tickets/:terminal/selection
func SelectItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.SelectItem{ItemID: req.ItemID})
			respond(c, ts)
		})
	}
}

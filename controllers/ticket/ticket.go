package ticketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/modifiers"
	"github.com/haleemzahid/pos-ticket-api/pricing"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// FlowReport is the modifier-flow view the UI renders while an item is
// under configuration.
type FlowReport struct {
	State                 modifiers.State         `json:"state"`
	Tabs                  []modifiers.Tab         `json:"tabs"`
	LockedGroups          []uint                  `json:"locked_groups,omitempty"`
	FirstUnsatisfiedGroup *uint                   `json:"first_unsatisfied_group,omitempty"`
	Confirmable           bool                    `json:"confirmable"`
	Unmet                 []modifiers.Requirement `json:"unmet,omitempty"`
}

func flowReport(ts *TerminalState) *FlowReport {
	it := ts.Session.EditingItem()
	if it == nil {
		return nil
	}
	p := &it.Product
	ok, unmet := modifiers.Validate(p, it)
	report := &FlowReport{
		State:        ts.Flow,
		Tabs:         modifiers.AvailableTabs(p),
		LockedGroups: modifiers.LockedGroupIDs(p, it),
		Confirmable:  ok,
		Unmet:        unmet,
	}
	if g := modifiers.FirstUnsatisfied(p, it); g != nil {
		id := g.ID
		report.FirstUnsatisfiedGroup = &id
	}
	return report
}

func ticketResponse(ts *TerminalState) gin.H {
	resp := gin.H{
		"session": ts.Session,
		"totals":  pricing.Compute(&ts.Session),
	}
	if report := flowReport(ts); report != nil {
		resp["flow"] = report
	}
	return resp
}

func respond(c *gin.Context, ts *TerminalState) {
	c.JSON(http.StatusOK, ticketResponse(ts))
}

// GetTicket returns the terminal's session, totals and flow report.
// GET /tickets/:terminal
func GetTicket(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			respond(c, ts)
		})
	}
}

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddItem resolves the product with all its option sets and adds it to
// the ticket. Products with no options land directly; anything else
// opens the modifier flow.
// POST /tickets/:terminal/items
func AddItem(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		err := db.
			Preload("TaxGroup").
			Preload("Sizes").
			Preload("Types").
			Preload("Portions").
			Preload("ToppingGroups").
			Preload("ToppingGroups.Toppings").
			First(&product, req.ProductID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
			}
			return
		}

		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.AddProduct{Product: product})
			if ts.Session.EditingItem() != nil {
				ts.Flow = modifiers.StateFor(&product)
			}
			respond(c, ts)
		})
	}
}

// CancelOrder discards the ticket and resets the session.
// POST /tickets/:terminal/cancel
func CancelOrder(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.CancelOrder{})
			ts.Flow = modifiers.State{}
			respond(c, ts)
		})
	}
}

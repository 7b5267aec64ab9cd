package invoiceControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ticketControllers "github.com/haleemzahid/pos-ticket-api/controllers/ticket"
	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/pricing"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// The hold/recall collaborator. Holding persists the serialized
// session under a generated ref and only then clears the terminal;
// cancelling never persists. That persistence-side difference is the
// whole distinction between the two.

// HoldOrder parks the current ticket.
// POST /tickets/:terminal/hold
func HoldOrder(db *gorm.DB, store *ticketControllers.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		terminal := c.Param("terminal")
		store.With(terminal, func(ts *ticketControllers.TerminalState) {
			if ts.Session.ItemCount() == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to hold"})
				return
			}

			payload, err := json.Marshal(ts.Session)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize ticket"})
				return
			}

			totals := pricing.Compute(&ts.Session)
			held := models.HeldInvoice{
				Ref:       uuid.NewString(),
				Terminal:  terminal,
				ItemCount: ts.Session.ItemCount(),
				Total:     totals.GrandTotal,
				Payload:   payload,
				CreatedAt: time.Now(),
			}
			if err := db.Create(&held).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hold ticket"})
				return
			}

			ts.Session = ticket.Apply(ts.Session, ticket.HoldOrder{})
			c.JSON(http.StatusOK, gin.H{
				"message": "Ticket held",
				"ref":     held.Ref,
				"session": ts.Session,
			})
		})
	}
}

// ListHeldInvoices returns the parked tickets, newest first.
// GET /invoices/held
func ListHeldInvoices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var held []models.HeldInvoice
		if err := db.Order("created_at DESC").Find(&held).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list held invoices"})
			return
		}
		c.JSON(http.StatusOK, held)
	}
}

// RecallInvoice restores a held ticket onto a terminal with an empty
// cart, then removes the held row.
// POST /tickets/:terminal/recall/:ref
func RecallInvoice(db *gorm.DB, store *ticketControllers.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("ref")

		var held models.HeldInvoice
		if err := db.Where("ref = ?", ref).First(&held).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Held invoice not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load held invoice"})
			}
			return
		}

		var session ticket.Session
		if err := json.Unmarshal(held.Payload, &session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Held invoice payload is corrupt"})
			return
		}

		store.With(c.Param("terminal"), func(ts *ticketControllers.TerminalState) {
			if ts.Session.ItemCount() > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Terminal has an open ticket"})
				return
			}
			ts.Session = session

			if err := db.Delete(&held).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove held invoice"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"session": ts.Session,
				"totals":  pricing.Compute(&ts.Session),
			})
		})
	}
}

// PurgeHeldInvoices deletes held rows older than maxAge. Run daily
// from main.
func PurgeHeldInvoices(db *gorm.DB, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := db.Where("created_at < ?", cutoff).Delete(&models.HeldInvoice{})
	return result.RowsAffected, result.Error
}

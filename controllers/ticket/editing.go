package ticketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/modifiers"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// Handlers for the item under configuration. Each one targets the
// editing item through the reducer; when no item is being edited the
// commands are no-ops and the handler just echoes the session back.

// EditItem reopens an existing line in the modifier flow.
// POST /tickets/:terminal/items/:itemID/edit
func EditItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.EditItem{ItemID: itemID})
			if it := ts.Session.EditingItem(); it != nil {
				ts.Flow = modifiers.StateFor(&it.Product)
			}
			respond(c, ts)
		})
	}
}

// Confirm commits the edited item, refusing while the modifier flow
// still reports unmet requirements. The reducer itself does not gate;
// this is the caller-side validity check.
// POST /tickets/:terminal/confirm
func Confirm(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			if it := ts.Session.EditingItem(); it != nil {
				if ok, unmet := modifiers.Validate(&it.Product, it); !ok {
					c.JSON(http.StatusUnprocessableEntity, gin.H{
						"error": "Item has unmet requirements",
						"unmet": unmet,
					})
					return
				}
			}
			ts.Session = ticket.Apply(ts.Session, ticket.ConfirmModifiers{})
			ts.Flow = modifiers.State{}
			respond(c, ts)
		})
	}
}

// CancelEdit abandons configuration; a freshly added item disappears.
// POST /tickets/:terminal/cancel-edit
func CancelEdit(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.CancelModifiers{})
			ts.Flow = modifiers.State{}
			respond(c, ts)
		})
	}
}

// DeleteEditing removes the edited item unconditionally.
// DELETE /tickets/:terminal/editing
func DeleteEditing(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			ts.Session = ticket.Apply(ts.Session, ticket.DeleteEditedItem{})
			ts.Flow = modifiers.State{}
			respond(c, ts)
		})
	}
}

type SetSizeRequest struct {
	SizeID *uint `json:"size_id"`
}

// SetSize selects a size from the edited product's own size list and
// auto-advances the flow to the next offered tab.
// PUT /tickets/:terminal/editing/size
func SetSize(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetSizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			it := ts.Session.EditingItem()
			if it == nil {
				respond(c, ts)
				return
			}
			var size *ticket.SizeValue
			if req.SizeID != nil {
				for _, s := range it.Product.Sizes {
					if s.ID == *req.SizeID {
						size = &ticket.SizeValue{SizeID: s.ID, Name: s.Name, Price: s.Price}
						break
					}
				}
				if size == nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Size does not belong to this product"})
					return
				}
			}
			ts.Session = ticket.Apply(ts.Session, ticket.SetSize{Size: size})
			if size != nil {
				ts.Flow = modifiers.Advance(&it.Product, ts.Flow)
			}
			respond(c, ts)
		})
	}
}

type SetTypeRequest struct {
	TypeID *uint `json:"type_id"`
}

// SetType selects a type and auto-advances.
// PUT /tickets/:terminal/editing/type
func SetType(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			it := ts.Session.EditingItem()
			if it == nil {
				respond(c, ts)
				return
			}
			var typ *ticket.TypeValue
			if req.TypeID != nil {
				for _, t := range it.Product.Types {
					if t.ID == *req.TypeID {
						typ = &ticket.TypeValue{TypeID: t.ID, Name: t.Name}
						break
					}
				}
				if typ == nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Type does not belong to this product"})
					return
				}
			}
			ts.Session = ticket.Apply(ts.Session, ticket.SetType{Type: typ})
			if typ != nil {
				ts.Flow = modifiers.Advance(&it.Product, ts.Flow)
			}
			respond(c, ts)
		})
	}
}

type SetPortionsRequest struct {
	Portions []PortionInput `json:"portions"`
}

// SetPortions replaces the portion selections, each with its own
// modifier set, and auto-advances.
// PUT /tickets/:terminal/editing/portions
func SetPortions(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetPortionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		affixes := loadAffixes(db)
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			it := ts.Session.EditingItem()
			if it == nil {
				respond(c, ts)
				return
			}
			portions := buildPortions(&it.Product, affixes, req.Portions)
			ts.Session = ticket.Apply(ts.Session, ticket.SetPortions{Portions: portions})
			if len(portions) > 0 {
				ts.Flow = modifiers.Advance(&it.Product, ts.Flow)
			}
			respond(c, ts)
		})
	}
}

type SetToppingsRequest struct {
	Modifiers []ModifierInput `json:"modifiers"`
}

// SetToppings replaces the item-level modifier selections.
// PUT /tickets/:terminal/editing/toppings
func SetToppings(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetToppingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		affixes := loadAffixes(db)
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			it := ts.Session.EditingItem()
			if it == nil {
				respond(c, ts)
				return
			}
			mods := buildModifiers(&it.Product, affixes, req.Modifiers)
			ts.Session = ticket.Apply(ts.Session, ticket.SetToppings{Modifiers: mods})
			respond(c, ts)
		})
	}
}

type SelectGroupRequest struct {
	GroupID uint `json:"group_id" binding:"required"`
}

// SelectGroup opens a topping group's modifier tab. Locked optional
// groups stay closed until every mandatory group is satisfied.
// PUT /tickets/:terminal/editing/group
func SelectGroup(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		store.With(c.Param("terminal"), func(ts *TerminalState) {
			if it := ts.Session.EditingItem(); it != nil {
				ts.Flow = modifiers.SelectGroup(&it.Product, it, ts.Flow, req.GroupID)
			}
			respond(c, ts)
		})
	}
}

package ticket

import (
	"github.com/google/uuid"

	"github.com/haleemzahid/pos-ticket-api/models"
)

// Apply runs one command against a session and returns the resulting
// session. It is total: commands that reference an unknown item id, or
// arrive in a state where they make no sense, leave the session
// unchanged. The input session is never mutated.
func Apply(s Session, cmd Command) Session {
	next := s.clone()

	switch c := cmd.(type) {
	case AddProduct:
		next.addProduct(c.Product)
	case EditItem:
		if it := next.item(c.ItemID); it != nil {
			backup := it.clone()
			next.EditBackup = &backup
			next.EditID = c.ItemID
			next.EditMode = EditExisting
			next.View = ViewModifiers
		}
	case ConfirmModifiers:
		if next.EditMode != EditNone {
			next.closeEditor()
		}
	case CancelModifiers:
		switch next.EditMode {
		case EditNew:
			next.removeItem(next.EditID)
			next.closeEditor()
		case EditExisting:
			if next.EditBackup != nil {
				if idx := next.itemIndex(next.EditID); idx >= 0 {
					next.Items[idx] = *next.EditBackup
				}
			}
			next.closeEditor()
		}
	case DeleteEditedItem:
		if next.EditMode != EditNone {
			next.removeItem(next.EditID)
			next.closeEditor()
		}
	case SetSize:
		if it := next.EditingItem(); it != nil {
			it.Size = c.Size
		}
	case SetType:
		if it := next.EditingItem(); it != nil {
			it.Type = c.Type
		}
	case SetPortions:
		if it := next.EditingItem(); it != nil {
			it.Portions = c.Portions
		}
	case SetToppings:
		if it := next.EditingItem(); it != nil {
			it.Modifiers = c.Modifiers
		}
	case SetQuantity:
		if it := next.item(c.ItemID); it != nil {
			if c.Quantity < 1 {
				next.removeItem(c.ItemID)
			} else {
				it.Quantity = c.Quantity
			}
		}
	case AddSpecialRequest:
		if it := next.item(c.ItemID); it != nil && it.Product.AllowSpecialRequests {
			it.SpecialRequests = append(it.SpecialRequests, SpecialRequest{Text: c.Text, Price: c.Price})
		}
	case SetItemTaxFree:
		if it := next.item(c.ItemID); it != nil {
			it.TaxFree = c.TaxFree
		}
	case SelectItem:
		if c.ItemID == "" {
			next.SelectedID = ""
		} else if next.item(c.ItemID) != nil {
			next.SelectedID = c.ItemID
		}
	case SetItemDiscount:
		if it := next.item(c.ItemID); it != nil {
			it.Discount = c.Discount
		}
	case SetInvoiceDiscount:
		next.InvoiceDiscount = c.Discount
	case DuplicateItem:
		if it := next.item(c.ItemID); it != nil {
			dup := it.clone()
			dup.ID = uuid.NewString()
			next.Items = append(next.Items, dup)
		}
	case RemoveItem:
		next.removeItem(c.ItemID)
	case HoldOrder, CancelOrder:
		next = NewSession()
	case SetServiceMethod:
		next.ServiceMethod = c.Method
	case SetTaxExempt:
		next.TaxExempt = c.Exempt
	case ShowView:
		if next.EditMode == EditNone && validView(c.View) {
			next.View = c.View
		}
	}

	return next
}

func validView(v View) bool {
	switch v {
	case ViewMenu, ViewModifiers, ViewDiscount, ViewPayment:
		return v != ViewModifiers // only the configuration flow opens it
	}
	return false
}

func (s *Session) addProduct(p models.Product) {
	item := Item{
		ID:       uuid.NewString(),
		Product:  p,
		Quantity: 1,
		TaxRate:  p.TaxRate(),
	}
	s.Items = append(s.Items, item)
	if p.NeedsConfiguration() {
		s.EditID = item.ID
		s.EditMode = EditNew
		s.View = ViewModifiers
	}
}

func (s *Session) closeEditor() {
	s.EditID = ""
	s.EditMode = EditNone
	s.EditBackup = nil
	s.View = ViewMenu
}

func (s *Session) removeItem(id string) {
	idx := s.itemIndex(id)
	if idx < 0 {
		return
	}
	s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
	if len(s.Items) == 0 {
		s.Items = nil
	}
	if s.SelectedID == id {
		s.SelectedID = ""
	}
	if s.EditID == id {
		s.EditID = ""
		s.EditMode = EditNone
		s.EditBackup = nil
	}
}

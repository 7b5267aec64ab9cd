package ticket

import (
	"github.com/haleemzahid/pos-ticket-api/models"
)

// View is the primary state dimension of an order session.
type View string

const (
	ViewMenu      View = "menu"
	ViewModifiers View = "modifiers"
	ViewDiscount  View = "discount"
	ViewPayment   View = "payment"
)

// EditMode says whether the item under configuration is a fresh add
// (removed entirely on cancel) or an existing item being reopened.
type EditMode string

const (
	EditNone     EditMode = ""
	EditNew      EditMode = "new"
	EditExisting EditMode = "existing"
)

// SizeValue, TypeValue, AffixValue, DiscountValue and ServiceMethodValue
// are copies of catalog rows taken at selection time, so later catalog
// edits never alter a ticket already in progress.
type SizeValue struct {
	SizeID uint    `json:"size_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

type TypeValue struct {
	TypeID uint   `json:"type_id"`
	Name   string `json:"name"`
}

type AffixValue struct {
	AffixID    uint    `json:"affix_id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type DiscountValue struct {
	DiscountID uint   `json:"discount_id"`
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
}

type ServiceMethodValue struct {
	MethodID uint   `json:"method_id"`
	Name     string `json:"name"`
}

// ItemModifier is one selected topping, owned by the item or by one of
// its portions.
type ItemModifier struct {
	ToppingID uint        `json:"topping_id"`
	GroupID   uint        `json:"group_id"`
	Name      string      `json:"name"`
	Price     float64     `json:"price"`
	Quantity  int         `json:"quantity"`
	Affix     *AffixValue `json:"affix,omitempty"`
}

// PortionSelection is one chosen portion with its own modifier set,
// which is how half/half configurations are represented.
type PortionSelection struct {
	PortionID uint           `json:"portion_id"`
	Name      string         `json:"name"`
	Modifiers []ItemModifier `json:"modifiers,omitempty"`
}

// SpecialRequest is a free-text extra with a cashier-entered price.
// The price travels as text and is parsed by the pricing engine.
type SpecialRequest struct {
	Text  string `json:"text"`
	Price string `json:"price"`
}

// Item is one line on the ticket.
type Item struct {
	ID              string             `json:"id"`
	Product         models.Product     `json:"product"`
	Quantity        int                `json:"quantity"`
	Size            *SizeValue         `json:"size,omitempty"`
	Type            *TypeValue         `json:"type,omitempty"`
	Portions        []PortionSelection `json:"portions,omitempty"`
	Modifiers       []ItemModifier     `json:"modifiers,omitempty"`
	SpecialRequests []SpecialRequest   `json:"special_requests,omitempty"`
	Discount        *DiscountValue     `json:"discount,omitempty"`
	TaxFree         bool               `json:"tax_free"`
	TaxRate         float64            `json:"tax_rate"`
}

// Session is the whole order-entry state for one terminal. It is plain
// nested data so it can round-trip through JSON for hold/recall.
type Session struct {
	Items      []Item   `json:"items"`
	SelectedID string   `json:"selected_id,omitempty"`
	EditID     string   `json:"edit_id,omitempty"`
	EditMode   EditMode `json:"edit_mode,omitempty"`

	// EditBackup is the pre-edit snapshot of an existing item reopened
	// for configuration; cancelling restores it so the item keeps its
	// last committed state.
	EditBackup      *Item               `json:"edit_backup,omitempty"`
	View            View                `json:"view"`
	ServiceMethod   *ServiceMethodValue `json:"service_method,omitempty"`
	InvoiceDiscount *DiscountValue      `json:"invoice_discount,omitempty"`
	TaxExempt       bool                `json:"tax_exempt"`
}

// NewSession returns an empty session on the menu view.
func NewSession() Session {
	return Session{View: ViewMenu}
}

// ItemCount returns the number of lines on the ticket.
func (s *Session) ItemCount() int {
	return len(s.Items)
}

// SelectedItem returns the highlighted item, or nil.
func (s *Session) SelectedItem() *Item {
	return s.item(s.SelectedID)
}

// EditingItem returns the item under configuration, or nil.
func (s *Session) EditingItem() *Item {
	if s.EditMode == EditNone {
		return nil
	}
	return s.item(s.EditID)
}

// EditingProduct returns the product of the item under configuration,
// or nil.
func (s *Session) EditingProduct() *models.Product {
	it := s.EditingItem()
	if it == nil {
		return nil
	}
	return &it.Product
}

func (s *Session) item(id string) *Item {
	if id == "" {
		return nil
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

func (s *Session) itemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneModifiers(mods []ItemModifier) []ItemModifier {
	if mods == nil {
		return nil
	}
	out := make([]ItemModifier, len(mods))
	copy(out, mods)
	for i := range out {
		if out[i].Affix != nil {
			affix := *out[i].Affix
			out[i].Affix = &affix
		}
	}
	return out
}

func (it Item) clone() Item {
	out := it
	if it.Size != nil {
		size := *it.Size
		out.Size = &size
	}
	if it.Type != nil {
		typ := *it.Type
		out.Type = &typ
	}
	if it.Discount != nil {
		disc := *it.Discount
		out.Discount = &disc
	}
	out.Modifiers = cloneModifiers(it.Modifiers)
	if it.Portions != nil {
		out.Portions = make([]PortionSelection, len(it.Portions))
		copy(out.Portions, it.Portions)
		for i := range out.Portions {
			out.Portions[i].Modifiers = cloneModifiers(out.Portions[i].Modifiers)
		}
	}
	if it.SpecialRequests != nil {
		out.SpecialRequests = make([]SpecialRequest, len(it.SpecialRequests))
		copy(out.SpecialRequests, it.SpecialRequests)
	}
	return out
}

func (s Session) clone() Session {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i := range s.Items {
			out.Items[i] = s.Items[i].clone()
		}
	}
	if s.ServiceMethod != nil {
		method := *s.ServiceMethod
		out.ServiceMethod = &method
	}
	if s.InvoiceDiscount != nil {
		disc := *s.InvoiceDiscount
		out.InvoiceDiscount = &disc
	}
	if s.EditBackup != nil {
		backup := s.EditBackup.clone()
		out.EditBackup = &backup
	}
	return out
}

package ticket

import "github.com/haleemzahid/pos-ticket-api/models"

// Command is the closed set of inputs the session reducer accepts.
// Each command is a plain value; Apply never mutates its arguments.
type Command interface {
	isCommand()
}

// AddProduct appends a new item for a fully-resolved catalog product.
// If the product offers any option set the item opens under
// configuration on the modifiers view; otherwise it lands directly on
// the ticket.
type AddProduct struct {
	Product models.Product
}

// EditItem reopens an existing item for configuration.
type EditItem struct {
	ItemID string
}

// ConfirmModifiers commits the item under configuration and returns to
// the menu. Validity is the caller's job; the reducer does not gate.
type ConfirmModifiers struct{}

// CancelModifiers abandons configuration. A newly added item is
// removed entirely; an existing item keeps its last committed state.
type CancelModifiers struct{}

// DeleteEditedItem removes the item under configuration outright.
type DeleteEditedItem struct{}

// SetSize, SetType, SetPortions and SetToppings replace the respective
// selection on the item under configuration.
type SetSize struct {
	Size *SizeValue
}

type SetType struct {
	Type *TypeValue
}

type SetPortions struct {
	Portions []PortionSelection
}

type SetToppings struct {
	Modifiers []ItemModifier
}

// SetQuantity changes an item's quantity. Anything below 1 removes the
// item; a quantity-0 line never exists.
type SetQuantity struct {
	ItemID   string
	Quantity int
}

// AddSpecialRequest appends a free-text extra to an item.
type AddSpecialRequest struct {
	ItemID string
	Text   string
	Price  string
}

type SetItemTaxFree struct {
	ItemID  string
	TaxFree bool
}

// SelectItem highlights an item as the target for item-scoped actions,
// or clears the highlight when ItemID is empty.
type SelectItem struct {
	ItemID string
}

type SetItemDiscount struct {
	ItemID   string
	Discount *DiscountValue
}

type SetInvoiceDiscount struct {
	Discount *DiscountValue
}

// DuplicateItem appends a value-equal copy of an item under a new id.
type DuplicateItem struct {
	ItemID string
}

type RemoveItem struct {
	ItemID string
}

// HoldOrder and CancelOrder both reset the session; persisting the
// held ticket beforehand is the caller's responsibility.
type HoldOrder struct{}

type CancelOrder struct{}

type SetServiceMethod struct {
	Method *ServiceMethodValue
}

type SetTaxExempt struct {
	Exempt bool
}

// ShowView switches between the non-configuration views. Ignored while
// an item is under configuration, which keeps the session on the
// modifiers view for the whole flow.
type ShowView struct {
	View View
}

func (AddProduct) isCommand()         {}
func (EditItem) isCommand()           {}
func (ConfirmModifiers) isCommand()   {}
func (CancelModifiers) isCommand()    {}
func (DeleteEditedItem) isCommand()   {}
func (SetSize) isCommand()            {}
func (SetType) isCommand()            {}
func (SetPortions) isCommand()        {}
func (SetToppings) isCommand()        {}
func (SetQuantity) isCommand()        {}
func (AddSpecialRequest) isCommand()  {}
func (SetItemTaxFree) isCommand()     {}
func (SelectItem) isCommand()         {}
func (SetItemDiscount) isCommand()    {}
func (SetInvoiceDiscount) isCommand() {}
func (DuplicateItem) isCommand()      {}
func (RemoveItem) isCommand()         {}
func (HoldOrder) isCommand()          {}
func (CancelOrder) isCommand()        {}
func (SetServiceMethod) isCommand()   {}
func (SetTaxExempt) isCommand()       {}
func (ShowView) isCommand()           {}

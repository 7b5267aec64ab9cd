// Package pricing derives all monetary figures for a ticket. Every
// function is a pure read over the session; nothing here mutates or
// performs I/O. Amounts stay in float64 end to end and are rounded to
// two decimals only when formatted for display.
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// Totals is the invoice-level aggregation shown on every render.
type Totals struct {
	Subtotal           float64 `json:"subtotal"`
	ItemDiscounts      float64 `json:"item_discounts"`
	InvoiceDiscount    float64 `json:"invoice_discount"`
	GrandTotalDiscount float64 `json:"grand_total_discount"`
	TotalTax           float64 `json:"total_tax"`
	GrandTotal         float64 `json:"grand_total"`
}

// ParseAmount reads a numeric string coming from the store or from
// free-text entry. Malformed input degrades to 0 so a corrupt row
// never blocks order entry.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// BasePrice is the selected size's price when a size is chosen, else
// the product's base price.
func BasePrice(it *ticket.Item) float64 {
	if it.Size != nil {
		return it.Size.Price
	}
	return it.Product.BasePrice
}

// ModifierPrice is topping price times the affix multiplier (1 when no
// affix is attached) times the modifier quantity.
func ModifierPrice(m ticket.ItemModifier) float64 {
	mult := 1.0
	if m.Affix != nil {
		mult = m.Affix.Multiplier
	}
	qty := m.Quantity
	if qty < 1 {
		qty = 1
	}
	return m.Price * mult * float64(qty)
}

// ModifiersTotal sums item-level modifiers plus every portion's own
// modifier set.
func ModifiersTotal(it *ticket.Item) float64 {
	var total float64
	for _, m := range it.Modifiers {
		total += ModifierPrice(m)
	}
	for _, p := range it.Portions {
		for _, m := range p.Modifiers {
			total += ModifierPrice(m)
		}
	}
	return total
}

// SpecialRequestsTotal sums the cashier-entered extra prices.
func SpecialRequestsTotal(it *ticket.Item) float64 {
	var total float64
	for _, r := range it.SpecialRequests {
		total += ParseAmount(r.Price)
	}
	return total
}

// LinePrice is base price times quantity plus modifiers plus special
// requests.
func LinePrice(it *ticket.Item) float64 {
	return BasePrice(it)*float64(it.Quantity) + ModifiersTotal(it) + SpecialRequestsTotal(it)
}

// ItemDiscount is the attached discount applied to the line price, or
// 0 when none is attached.
func ItemDiscount(it *ticket.Item) float64 {
	if it.Discount == nil {
		return 0
	}
	return LinePrice(it) * ParseAmount(it.Discount.Percentage) / 100
}

// ItemTax is 0 for a tax-exempt invoice, a tax-free item, or an
// untaxed product; otherwise the discounted line price times the rate
// the item captured at creation.
func ItemTax(it *ticket.Item, invoiceTaxExempt bool) float64 {
	if invoiceTaxExempt || it.TaxFree || !it.Product.Taxed {
		return 0
	}
	return (LinePrice(it) - ItemDiscount(it)) * it.TaxRate
}

// ItemTotal is line price minus item discount plus item tax.
func ItemTotal(it *ticket.Item, invoiceTaxExempt bool) float64 {
	return LinePrice(it) - ItemDiscount(it) + ItemTax(it, invoiceTaxExempt)
}

// Compute aggregates the whole ticket. The invoice discount applies to
// the subtotal after item discounts, so the two never compound.
func Compute(s *ticket.Session) Totals {
	var t Totals
	for i := range s.Items {
		it := &s.Items[i]
		t.Subtotal += LinePrice(it)
		t.ItemDiscounts += ItemDiscount(it)
		t.TotalTax += ItemTax(it, s.TaxExempt)
	}
	if s.InvoiceDiscount != nil {
		t.InvoiceDiscount = (t.Subtotal - t.ItemDiscounts) * ParseAmount(s.InvoiceDiscount.Percentage) / 100
	}
	t.GrandTotalDiscount = t.ItemDiscounts + t.InvoiceDiscount
	t.GrandTotal = t.Subtotal - t.GrandTotalDiscount + t.TotalTax
	return t
}

// Due is what remains after the amount tendered so far, floored at 0.
// Tender handling beyond this is a stub extension point.
func Due(t Totals, tendered float64) float64 {
	due := t.GrandTotal - tendered
	if due < 0 {
		return 0
	}
	return due
}

// Format renders an amount for display with two decimals.
func Format(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

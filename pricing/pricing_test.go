package pricing

import (
	"math"
	"testing"

	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

func within(t *testing.T, want, got float64, label string) {
	t.Helper()
	if math.Abs(want-got) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

func taxedItem(line float64, rate float64) ticket.Item {
	return ticket.Item{
		ID:       "a",
		Product:  models.Product{Name: "Item", BasePrice: line, Taxed: true},
		Quantity: 1,
		TaxRate:  rate,
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"8.25", 8.25},
		{" 5.5 ", 5.5},
		{"", 0},
		{"abc", 0},
		{"12,5", 0},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Errorf("ParseAmount(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestBasePrice_SizeOverridesProduct(t *testing.T) {
	it := ticket.Item{Product: models.Product{BasePrice: 8}, Quantity: 1}
	within(t, 8, BasePrice(&it), "no size")

	it.Size = &ticket.SizeValue{SizeID: 1, Name: "Large", Price: 12}
	within(t, 12, BasePrice(&it), "with size")
}

func TestModifierPrice_AffixMultiplierAndQuantity(t *testing.T) {
	mod := ticket.ItemModifier{ToppingID: 1, Price: 1.50, Quantity: 2}
	within(t, 3.00, ModifierPrice(mod), "no affix defaults to multiplier 1")

	mod.Affix = &ticket.AffixValue{Name: "Extra", Multiplier: 2}
	within(t, 6.00, ModifierPrice(mod), "extra doubles")

	mod.Affix = &ticket.AffixValue{Name: "No", Multiplier: 0}
	within(t, 0, ModifierPrice(mod), "no zeroes the price")
}

func TestModifiersTotal_IncludesPortionModifiers(t *testing.T) {
	it := ticket.Item{
		Product:  models.Product{BasePrice: 10},
		Quantity: 1,
		Modifiers: []ticket.ItemModifier{
			{ToppingID: 1, Price: 1.00, Quantity: 1},
		},
		Portions: []ticket.PortionSelection{
			{PortionID: 1, Name: "Left Half", Modifiers: []ticket.ItemModifier{
				{ToppingID: 2, Price: 0.75, Quantity: 1},
			}},
			{PortionID: 2, Name: "Right Half", Modifiers: []ticket.ItemModifier{
				{ToppingID: 3, Price: 0.25, Quantity: 2},
			}},
		},
	}
	within(t, 1.00+0.75+0.50, ModifiersTotal(&it), "item plus portion modifiers")
}

func TestLinePrice_QuantityAppliesToBaseOnly(t *testing.T) {
	it := ticket.Item{
		Product:  models.Product{BasePrice: 4},
		Quantity: 3,
		Modifiers: []ticket.ItemModifier{
			{ToppingID: 1, Price: 0.50, Quantity: 1},
		},
		SpecialRequests: []ticket.SpecialRequest{
			{Text: "extra hot", Price: "0.25"},
			{Text: "scribble", Price: "not a number"},
		},
	}
	within(t, 4*3+0.50+0.25, LinePrice(&it), "line price")
}

func TestItemExample_TenDollarsTenPercentTax(t *testing.T) {
	// Line $10.00, 10% item discount, 8.25% rate.
	it := taxedItem(10.00, 0.0825)
	it.Discount = &ticket.DiscountValue{DiscountID: 1, Percentage: "10"}

	within(t, 1.00, ItemDiscount(&it), "item discount")
	within(t, 0.7425, ItemTax(&it, false), "tax on discounted amount")
	within(t, 9.7425, ItemTotal(&it, false), "item grand total")
}

func TestItemTax_ZeroCases(t *testing.T) {
	it := taxedItem(10, 0.0825)

	within(t, 0, ItemTax(&it, true), "invoice tax exempt")

	it.TaxFree = true
	within(t, 0, ItemTax(&it, false), "item tax-free override")

	it.TaxFree = false
	it.Product.Taxed = false
	within(t, 0, ItemTax(&it, false), "untaxed product")
}

func TestCompute_InvoiceDiscountExample(t *testing.T) {
	// Two items, $20 and $10, no item discounts, 5% invoice discount.
	s := ticket.Session{
		Items: []ticket.Item{taxedItem(20, 0), taxedItem(10, 0)},
		InvoiceDiscount: &ticket.DiscountValue{
			DiscountID: 1, Name: "Regular", Percentage: "5",
		},
	}
	totals := Compute(&s)

	within(t, 30.00, totals.Subtotal, "subtotal")
	within(t, 1.50, totals.InvoiceDiscount, "invoice discount")
	within(t, 28.50, totals.GrandTotal, "grand total")
}

func TestCompute_InvoiceDiscountAppliesAfterItemDiscounts(t *testing.T) {
	it := taxedItem(10, 0)
	it.Discount = &ticket.DiscountValue{DiscountID: 2, Percentage: "10"}
	s := ticket.Session{
		Items: []ticket.Item{it},
		InvoiceDiscount: &ticket.DiscountValue{
			DiscountID: 1, Percentage: "5",
		},
	}
	totals := Compute(&s)

	within(t, 1.00, totals.ItemDiscounts, "item discounts")
	// 5% of (10 - 1), never 5% of 10.
	within(t, 0.45, totals.InvoiceDiscount, "invoice discount after item discounts")
	within(t, 1.45, totals.GrandTotalDiscount, "grand total discount")
}

func TestCompute_GrandTotalIdentity(t *testing.T) {
	withDiscount := taxedItem(12.34, 0.0825)
	withDiscount.Discount = &ticket.DiscountValue{DiscountID: 1, Percentage: "7.5"}
	plain := taxedItem(5.00, 0.0825)
	taxFree := taxedItem(3.33, 0.0825)
	taxFree.TaxFree = true

	s := ticket.Session{
		Items:           []ticket.Item{withDiscount, plain, taxFree},
		InvoiceDiscount: &ticket.DiscountValue{DiscountID: 2, Percentage: "2.5"},
	}
	totals := Compute(&s)

	if totals.GrandTotal != totals.Subtotal-totals.GrandTotalDiscount+totals.TotalTax {
		t.Errorf("identity violated: %v != %v - %v + %v",
			totals.GrandTotal, totals.Subtotal, totals.GrandTotalDiscount, totals.TotalTax)
	}
}

func TestCompute_TaxExemptZeroesAllTax(t *testing.T) {
	it := taxedItem(10, 0.0825)
	s := ticket.Session{Items: []ticket.Item{it, taxedItem(25, 0.1)}, TaxExempt: true}

	totals := Compute(&s)
	within(t, 0, totals.TotalTax, "exempt invoice")
}

func TestCompute_MalformedDiscountDegradesToZero(t *testing.T) {
	it := taxedItem(10, 0)
	it.Discount = &ticket.DiscountValue{DiscountID: 1, Percentage: "garbage"}
	s := ticket.Session{Items: []ticket.Item{it}}

	totals := Compute(&s)
	within(t, 0, totals.ItemDiscounts, "corrupt percentage treated as 0")
	within(t, 10, totals.GrandTotal, "grand total unaffected")
}

func TestDue_FlooredAtZero(t *testing.T) {
	totals := Totals{GrandTotal: 28.50}
	within(t, 28.50, Due(totals, 0), "nothing tendered")
	within(t, 8.50, Due(totals, 20), "partial tender")
	within(t, 0, Due(totals, 50), "overtender floors at zero")
}

func TestFormat_RoundsOnlyAtDisplay(t *testing.T) {
	if got := Format(9.7425); got != "9.74" {
		t.Errorf("expected 9.74, got %q", got)
	}
	if got := Format(1.005); got != "1.00" && got != "1.01" {
		t.Errorf("unexpected formatting %q", got)
	}
	if got := Format(28.5); got != "28.50" {
		t.Errorf("expected 28.50, got %q", got)
	}
}

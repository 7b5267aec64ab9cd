package ticketControllers

import (
	"gorm.io/gorm"

	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// -------- Selection inputs --------

type ModifierInput struct {
	ToppingID uint  `json:"topping_id" binding:"required"`
	Quantity  int   `json:"quantity"`
	AffixID   *uint `json:"affix_id"`
}

type PortionInput struct {
	PortionID uint            `json:"portion_id" binding:"required"`
	Modifiers []ModifierInput `json:"modifiers"`
}

// -------- Resolution helpers --------

// This controller is the sole builder of ticket selections: every
// topping and portion is resolved against the edited item's own
// product, and inputs that do not belong to it are dropped.

func loadAffixes(db *gorm.DB) map[uint]models.Affix {
	var affixes []models.Affix
	if err := db.Find(&affixes).Error; err != nil {
		return nil
	}
	out := make(map[uint]models.Affix, len(affixes))
	for _, a := range affixes {
		out[a.ID] = a
	}
	return out
}

func findTopping(p *models.Product, toppingID uint) (models.Topping, uint, bool) {
	for _, g := range p.ToppingGroups {
		for _, t := range g.Toppings {
			if t.ID == toppingID {
				return t, g.ID, true
			}
		}
	}
	return models.Topping{}, 0, false
}

func buildModifiers(p *models.Product, affixes map[uint]models.Affix, inputs []ModifierInput) []ticket.ItemModifier {
	var out []ticket.ItemModifier
	for _, in := range inputs {
		topping, groupID, ok := findTopping(p, in.ToppingID)
		if !ok {
			continue
		}
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		mod := ticket.ItemModifier{
			ToppingID: topping.ID,
			GroupID:   groupID,
			Name:      topping.Name,
			Price:     topping.Price,
			Quantity:  qty,
		}
		if in.AffixID != nil {
			if affix, ok := affixes[*in.AffixID]; ok {
				mod.Affix = &ticket.AffixValue{
					AffixID:    affix.ID,
					Name:       affix.Name,
					Multiplier: affix.Multiplier,
				}
			}
		}
		out = append(out, mod)
	}
	return out
}

func buildPortions(p *models.Product, affixes map[uint]models.Affix, inputs []PortionInput) []ticket.PortionSelection {
	var out []ticket.PortionSelection
	for _, in := range inputs {
		for _, portion := range p.Portions {
			if portion.ID == in.PortionID {
				out = append(out, ticket.PortionSelection{
					PortionID: portion.ID,
					Name:      portion.Name,
					Modifiers: buildModifiers(p, affixes, in.Modifiers),
				})
				break
			}
		}
	}
	return out
}

func resolveDiscount(db *gorm.DB, discountID uint, wholeInvoice bool) *ticket.DiscountValue {
	var discount models.Discount
	if err := db.First(&discount, discountID).Error; err != nil {
		return nil
	}
	if discount.WholeInvoice != wholeInvoice {
		return nil
	}
	return &ticket.DiscountValue{
		DiscountID: discount.ID,
		Name:       discount.Name,
		Percentage: discount.Percentage,
	}
}

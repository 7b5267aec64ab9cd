// Package modifiers sequences the configuration of a single ticket
// item: which tabs the product offers, where selection advances next,
// which topping groups are open, and whether the item can be
// confirmed. Everything here is advisory; the session reducer itself
// never gates on it.
package modifiers

import (
	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

// Tab is one step of the configuration flow, in fixed order.
type Tab string

const (
	TabSizes     Tab = "sizes"
	TabTypes     Tab = "types"
	TabPortions  Tab = "portions"
	TabGroups    Tab = "groups"
	TabModifiers Tab = "modifiers"
)

var tabOrder = []Tab{TabSizes, TabTypes, TabPortions, TabGroups, TabModifiers}

// State is the flow position for the item under configuration.
type State struct {
	Tab     Tab  `json:"tab"`
	GroupID uint `json:"group_id,omitempty"`
}

// offers reports whether the product has any options behind a tab.
// The groups tab only exists when there is a choice of group to make;
// a single group skips straight to its modifiers.
func offers(p *models.Product, tab Tab) bool {
	switch tab {
	case TabSizes:
		return len(p.Sizes) > 0
	case TabTypes:
		return len(p.Types) > 0
	case TabPortions:
		return len(p.Portions) > 0
	case TabGroups:
		return len(p.ToppingGroups) > 1
	case TabModifiers:
		return len(p.ToppingGroups) > 0
	}
	return false
}

// AvailableTabs lists the tabs the product actually offers.
func AvailableTabs(p *models.Product) []Tab {
	var tabs []Tab
	for _, tab := range tabOrder {
		if offers(p, tab) {
			tabs = append(tabs, tab)
		}
	}
	return tabs
}

// StateFor returns the flow opened on the first offered tab.
func StateFor(p *models.Product) State {
	st := State{}
	for _, tab := range tabOrder {
		if offers(p, tab) {
			st.Tab = tab
			break
		}
	}
	if st.Tab == TabModifiers && len(p.ToppingGroups) == 1 {
		st.GroupID = p.ToppingGroups[0].ID
	}
	return st
}

// Advance moves to the next tab the product offers, skipping absent
// ones. On the last offered tab the flow stays put.
func Advance(p *models.Product, st State) State {
	past := false
	for _, tab := range tabOrder {
		if tab == st.Tab {
			past = true
			continue
		}
		if past && offers(p, tab) {
			st.Tab = tab
			if tab == TabModifiers && len(p.ToppingGroups) == 1 {
				st.GroupID = p.ToppingGroups[0].ID
			}
			return st
		}
	}
	return st
}

// SelectGroup opens a topping group's modifiers tab, refusing groups
// that are currently locked or not offered by the product.
func SelectGroup(p *models.Product, it *ticket.Item, st State, groupID uint) State {
	for _, g := range SelectableGroups(p, it) {
		if g.ID == groupID {
			st.Tab = TabModifiers
			st.GroupID = groupID
			return st
		}
	}
	return st
}

// GroupSatisfied reports whether the item carries at least one
// modifier drawn from the group's own topping set, counting both
// item-level and portion-level selections.
func GroupSatisfied(g models.ToppingGroup, it *ticket.Item) bool {
	members := make(map[uint]bool, len(g.Toppings))
	for _, t := range g.Toppings {
		members[t.ID] = true
	}
	for _, m := range it.Modifiers {
		if members[m.ToppingID] {
			return true
		}
	}
	for _, p := range it.Portions {
		for _, m := range p.Modifiers {
			if members[m.ToppingID] {
				return true
			}
		}
	}
	return false
}

// FirstUnsatisfied returns the first mandatory group still lacking a
// selection, or nil once all are met.
func FirstUnsatisfied(p *models.Product, it *ticket.Item) *models.ToppingGroup {
	for i := range p.ToppingGroups {
		g := &p.ToppingGroups[i]
		if g.Mandatory && !GroupSatisfied(*g, it) {
			return g
		}
	}
	return nil
}

// SelectableGroups lists the groups open for browsing. While any
// mandatory group is unsatisfied, optional groups are locked out.
func SelectableGroups(p *models.Product, it *ticket.Item) []models.ToppingGroup {
	gated := FirstUnsatisfied(p, it) != nil
	var out []models.ToppingGroup
	for _, g := range p.ToppingGroups {
		if gated && !g.Mandatory {
			continue
		}
		out = append(out, g)
	}
	return out
}

// LockedGroupIDs lists the groups currently closed by the mandatory
// gate, for the UI to render dimmed.
func LockedGroupIDs(p *models.Product, it *ticket.Item) []uint {
	if FirstUnsatisfied(p, it) == nil {
		return nil
	}
	var out []uint
	for _, g := range p.ToppingGroups {
		if !g.Mandatory {
			out = append(out, g.ID)
		}
	}
	return out
}

// Requirement is one unmet confirm precondition.
type Requirement struct {
	Kind    string `json:"kind"` // "size" or "group"
	GroupID uint   `json:"group_id,omitempty"`
	Name    string `json:"name"`
}

// Validate reports whether the item may be confirmed: a size whenever
// the product offers sizes, and every mandatory group satisfied. The
// caller checks this before issuing the confirm command.
func Validate(p *models.Product, it *ticket.Item) (bool, []Requirement) {
	var unmet []Requirement
	if len(p.Sizes) > 0 && it.Size == nil {
		unmet = append(unmet, Requirement{Kind: "size", Name: "size"})
	}
	for _, g := range p.ToppingGroups {
		if g.Mandatory && !GroupSatisfied(g, it) {
			unmet = append(unmet, Requirement{Kind: "group", GroupID: g.ID, Name: g.Name})
		}
	}
	return len(unmet) == 0, unmet
}

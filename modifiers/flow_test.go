package modifiers

import (
	"reflect"
	"testing"

	"github.com/haleemzahid/pos-ticket-api/models"
	"github.com/haleemzahid/pos-ticket-api/ticket"
)

func pizza() models.Product {
	return models.Product{
		ID:        1,
		Name:      "Pizza",
		BasePrice: 8,
		Sizes: []models.ProductSize{
			{ID: 10, Name: "Small", Price: 8},
			{ID: 11, Name: "Large", Price: 12},
		},
		Types: []models.ProductType{
			{ID: 20, Name: "Thin Crust"},
		},
		Portions: []models.ProductPortion{
			{ID: 30, Name: "Left Half"},
			{ID: 31, Name: "Right Half"},
		},
		ToppingGroups: []models.ToppingGroup{
			{ID: 40, Name: "Cheese", Mandatory: true, Toppings: []models.Topping{
				{ID: 50, GroupID: 40, Name: "Mozzarella", Price: 1},
			}},
			{ID: 41, Name: "Veggies", Toppings: []models.Topping{
				{ID: 51, GroupID: 41, Name: "Onion", Price: 0.5},
			}},
		},
	}
}

func TestAvailableTabs_SkipsAbsentOptionSets(t *testing.T) {
	p := pizza()
	want := []Tab{TabSizes, TabTypes, TabPortions, TabGroups, TabModifiers}
	if got := AvailableTabs(&p); !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}

	p.Types = nil
	p.Portions = nil
	want = []Tab{TabSizes, TabGroups, TabModifiers}
	if got := AvailableTabs(&p); !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAvailableTabs_SingleGroupSkipsGroupsTab(t *testing.T) {
	p := pizza()
	p.Sizes = nil
	p.Types = nil
	p.Portions = nil
	p.ToppingGroups = p.ToppingGroups[:1]

	want := []Tab{TabModifiers}
	if got := AvailableTabs(&p); !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStateFor_OpensFirstOfferedTab(t *testing.T) {
	p := pizza()
	if st := StateFor(&p); st.Tab != TabSizes {
		t.Errorf("expected sizes tab, got %q", st.Tab)
	}

	p.Sizes = nil
	if st := StateFor(&p); st.Tab != TabTypes {
		t.Errorf("expected types tab, got %q", st.Tab)
	}

	p.Types = nil
	p.Portions = nil
	p.ToppingGroups = p.ToppingGroups[:1]
	st := StateFor(&p)
	if st.Tab != TabModifiers {
		t.Errorf("expected modifiers tab, got %q", st.Tab)
	}
	if st.GroupID != 40 {
		t.Errorf("expected the single group preselected, got %d", st.GroupID)
	}
}

func TestAdvance_NeverSkipsAnOfferedTab(t *testing.T) {
	p := pizza()
	st := State{Tab: TabSizes}

	st = Advance(&p, st)
	if st.Tab != TabTypes {
		t.Errorf("expected advance to types, got %q", st.Tab)
	}
	st = Advance(&p, st)
	if st.Tab != TabPortions {
		t.Errorf("expected advance to portions, got %q", st.Tab)
	}
	st = Advance(&p, st)
	if st.Tab != TabGroups {
		t.Errorf("expected advance to groups, got %q", st.Tab)
	}
}

func TestAdvance_SkipsAbsentTabsAndStopsAtLast(t *testing.T) {
	p := pizza()
	p.Types = nil
	p.Portions = nil

	st := Advance(&p, State{Tab: TabSizes})
	if st.Tab != TabGroups {
		t.Errorf("expected absent tabs skipped, got %q", st.Tab)
	}

	st = Advance(&p, State{Tab: TabModifiers})
	if st.Tab != TabModifiers {
		t.Errorf("expected last tab to stay, got %q", st.Tab)
	}
}

func TestMandatoryGating(t *testing.T) {
	p := pizza()
	it := &ticket.Item{ID: "a", Product: p, Quantity: 1}

	first := FirstUnsatisfied(&p, it)
	if first == nil || first.ID != 40 {
		t.Fatalf("expected cheese group unsatisfied, got %+v", first)
	}

	locked := LockedGroupIDs(&p, it)
	if !reflect.DeepEqual([]uint{41}, locked) {
		t.Errorf("expected optional group locked, got %v", locked)
	}

	selectable := SelectableGroups(&p, it)
	if len(selectable) != 1 || selectable[0].ID != 40 {
		t.Errorf("expected only the mandatory group selectable, got %+v", selectable)
	}

	// Satisfy the mandatory group.
	it.Modifiers = []ticket.ItemModifier{{ToppingID: 50, GroupID: 40, Price: 1, Quantity: 1}}

	if FirstUnsatisfied(&p, it) != nil {
		t.Error("expected no unsatisfied group after selection")
	}
	if locked := LockedGroupIDs(&p, it); locked != nil {
		t.Errorf("expected nothing locked, got %v", locked)
	}
	if got := len(SelectableGroups(&p, it)); got != 2 {
		t.Errorf("expected both groups selectable, got %d", got)
	}
}

func TestGroupSatisfied_CountsPortionModifiers(t *testing.T) {
	p := pizza()
	it := &ticket.Item{
		ID: "a", Product: p, Quantity: 1,
		Portions: []ticket.PortionSelection{
			{PortionID: 30, Name: "Left Half", Modifiers: []ticket.ItemModifier{
				{ToppingID: 50, GroupID: 40, Price: 1, Quantity: 1},
			}},
		},
	}

	if !GroupSatisfied(p.ToppingGroups[0], it) {
		t.Error("expected a portion-level selection to satisfy the group")
	}
}

func TestSelectGroup_RefusesLockedGroup(t *testing.T) {
	p := pizza()
	it := &ticket.Item{ID: "a", Product: p, Quantity: 1}
	st := State{Tab: TabGroups}

	after := SelectGroup(&p, it, st, 41)
	if !reflect.DeepEqual(st, after) {
		t.Errorf("expected locked group refused, got %+v", after)
	}

	after = SelectGroup(&p, it, st, 40)
	if after.Tab != TabModifiers || after.GroupID != 40 {
		t.Errorf("expected mandatory group opened, got %+v", after)
	}
}

func TestValidate(t *testing.T) {
	p := pizza()
	it := &ticket.Item{ID: "a", Product: p, Quantity: 1}

	ok, unmet := Validate(&p, it)
	if ok {
		t.Fatal("expected item not confirmable")
	}
	if len(unmet) != 2 {
		t.Fatalf("expected size and group requirements, got %+v", unmet)
	}
	if unmet[0].Kind != "size" {
		t.Errorf("expected size requirement first, got %+v", unmet[0])
	}
	if unmet[1].Kind != "group" || unmet[1].GroupID != 40 {
		t.Errorf("expected cheese group requirement, got %+v", unmet[1])
	}

	it.Size = &ticket.SizeValue{SizeID: 11, Name: "Large", Price: 12}
	it.Modifiers = []ticket.ItemModifier{{ToppingID: 50, GroupID: 40, Price: 1, Quantity: 1}}

	ok, unmet = Validate(&p, it)
	if !ok || unmet != nil {
		t.Errorf("expected confirmable item, got ok=%v unmet=%+v", ok, unmet)
	}
}

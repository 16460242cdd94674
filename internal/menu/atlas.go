package menu

import (
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

// Atlas is the session-local state of the menu page: the current filter,
// the visible dishes it yields, and the open dish. It lives as long as the
// page and is never reset on its own.
type Atlas struct {
	items     []model.Item
	filter    Filter
	visible   []model.Item
	Selection *Selection
}

// NewAtlas builds the page state over a catalog snapshot.
func NewAtlas(items []model.Item, initial Filter, lock *scrolllock.Lock) *Atlas {
	a := &Atlas{
		items:     items,
		filter:    initial,
		Selection: NewSelection(lock),
	}
	a.recompute()
	return a
}

func (a *Atlas) recompute() {
	a.visible = Apply(a.items, a.filter)
}

// Filter returns the current filter state.
func (a *Atlas) Filter() Filter { return a.filter }

// Visible returns the dishes passing the current filter.
func (a *Atlas) Visible() []model.Item { return a.visible }

// Empty reports the "no dishes found" state.
func (a *Atlas) Empty() bool { return len(a.visible) == 0 }

// SetCategory switches chapters. It returns false when nothing changed.
func (a *Atlas) SetCategory(c model.Category) bool {
	if !c.Valid() || c == a.filter.Category {
		return false
	}
	a.filter.Category = c
	a.recompute()
	return true
}

// SetDietary switches the dietary chip.
func (a *Atlas) SetDietary(f model.DietaryFilter) bool {
	if !f.Valid() || f == a.filter.Dietary {
		return false
	}
	a.filter.Dietary = f
	a.recompute()
	return true
}

// SetQuery replaces the search text. Any string is accepted.
func (a *Atlas) SetQuery(q string) bool {
	if q == a.filter.Query {
		return false
	}
	a.filter.Query = q
	a.recompute()
	return true
}

// StepCategory moves delta chapters along the display order, wrapping.
func (a *Atlas) StepCategory(delta int) bool {
	n := len(model.Categories)
	for i, c := range model.Categories {
		if c == a.filter.Category {
			return a.SetCategory(model.Categories[((i+delta)%n+n)%n])
		}
	}
	return a.SetCategory(model.Categories[0])
}

// Package menu implements the live menu atlas: the filter engine that
// derives the visible dishes and the selection state behind the plate
// detail view.
package menu

import (
	"strings"

	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

// Filter is the three independent dimensions narrowing the catalog.
type Filter struct {
	Category model.Category
	Dietary  model.DietaryFilter
	Query    string
}

// DefaultFilter is the state the atlas mounts with.
func DefaultFilter(c model.Category) Filter {
	return Filter{Category: c, Dietary: model.DietaryAll}
}

// Matches reports whether an item passes all three predicates.
func (f Filter) Matches(it model.Item) bool {
	if it.Category != f.Category {
		return false
	}
	if tag, ok := f.Dietary.Tag(); ok && !it.HasTag(tag) {
		return false
	}
	q := strings.TrimSpace(f.Query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.SearchText()), strings.ToLower(q))
}

// Apply returns the items matching f, in their original order. The input
// slice is never modified. An empty, non-nil slice means "no dishes".
func Apply(items []model.Item, f Filter) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

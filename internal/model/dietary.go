package model

import "strings"

// DietaryTag is a badge attached to zero or more items.
type DietaryTag string

const (
	TagVegetarian DietaryTag = "veg"
	TagVegan      DietaryTag = "vegan"
	TagGlutenFree DietaryTag = "gf"
	TagSignature  DietaryTag = "signature"
)

// DietaryTags lists every tag.
var DietaryTags = []DietaryTag{TagVegetarian, TagVegan, TagGlutenFree, TagSignature}

// tagLabels must cover every DietaryTag; model tests enforce that.
var tagLabels = map[DietaryTag]string{
	TagVegetarian: "Vegetarian",
	TagVegan:      "Vegan",
	TagGlutenFree: "Gluten Free",
	TagSignature:  "Signature",
}

// Label is the badge text printed on cards and in the detail view.
func (t DietaryTag) Label() string {
	if l, ok := tagLabels[t]; ok {
		return l
	}
	return string(t)
}

// DietaryFilter narrows the visible set to items carrying one tag, or
// passes everything through when set to DietaryAll.
type DietaryFilter string

const DietaryAll DietaryFilter = "all"

// DietaryFilters is the chip order shown in the filter bar.
var DietaryFilters = []DietaryFilter{
	DietaryAll,
	DietaryFilter(TagSignature),
	DietaryFilter(TagVegetarian),
	DietaryFilter(TagVegan),
	DietaryFilter(TagGlutenFree),
}

// filterLabels is the chip text. Signature reads "Chef Signature" here and
// "Signature" on badges.
var filterLabels = map[DietaryFilter]string{
	DietaryAll:                   "All",
	DietaryFilter(TagSignature):  "Chef Signature",
	DietaryFilter(TagVegetarian): "Vegetarian",
	DietaryFilter(TagVegan):      "Vegan",
	DietaryFilter(TagGlutenFree): "Gluten Free",
}

// Label is the chip text for the filter.
func (f DietaryFilter) Label() string {
	if l, ok := filterLabels[f]; ok {
		return l
	}
	return string(f)
}

// Tag returns the tag the filter selects on. ok is false for DietaryAll.
func (f DietaryFilter) Tag() (DietaryTag, bool) {
	if f == DietaryAll {
		return "", false
	}
	return DietaryTag(f), true
}

// Valid reports whether f is one of the five chips.
func (f DietaryFilter) Valid() bool {
	_, ok := filterLabels[f]
	return ok
}

var filterAliases = map[string]DietaryFilter{
	"vegetarian":  DietaryFilter(TagVegetarian),
	"gluten-free": DietaryFilter(TagGlutenFree),
	"glutenfree":  DietaryFilter(TagGlutenFree),
	"gluten_free": DietaryFilter(TagGlutenFree),
	"":            DietaryAll,
}

// ParseDietaryFilter accepts chip ids and the long spellings
// ("vegetarian", "gluten-free") in any case.
func ParseDietaryFilter(s string) (DietaryFilter, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if f, ok := filterAliases[key]; ok {
		return f, true
	}
	f := DietaryFilter(key)
	return f, f.Valid()
}

// Next cycles to the following chip, wrapping around.
func (f DietaryFilter) Next() DietaryFilter {
	return f.step(1)
}

// Prev cycles to the preceding chip, wrapping around.
func (f DietaryFilter) Prev() DietaryFilter {
	return f.step(-1)
}

func (f DietaryFilter) step(delta int) DietaryFilter {
	n := len(DietaryFilters)
	for i, known := range DietaryFilters {
		if known == f {
			return DietaryFilters[((i+delta)%n+n)%n]
		}
	}
	return DietaryAll
}

// Package catalog holds the compiled-in Ember & Oak menu. The data is
// read-only: every accessor hands out copies so no caller can mutate the
// shared slices.
package catalog

import (
	"errors"
	"fmt"

	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

// FallbackImageURL replaces a dish photo that fails to load.
const FallbackImageURL = "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=1400&q=80"

// NoAllergens is the sentinel allergen entry for dishes without any.
const NoAllergens = "None"

// DefaultCategory is the chapter shown when the menu first opens.
const DefaultCategory = model.CategoryFire

// ErrUnknownItem is returned by ByID for ids not on the menu.
var ErrUnknownItem = errors.New("unknown menu item")

var categories = []model.CategoryInfo{
	{ID: model.CategoryEarth, Label: "From the Earth", Subtitle: "Seasonal produce and smoke-kissed botanicals"},
	{ID: model.CategoryFire, Label: "From the Fire", Subtitle: "Prime cuts and ember-forged proteins"},
	{ID: model.CategorySea, Label: "From the Sea", Subtitle: "Ocean catches touched by cedar and coal"},
	{ID: model.CategoryHearth, Label: "Hearth Sides", Subtitle: "Shared plates from the live-fire station"},
	{ID: model.CategorySweet, Label: "Sweet Endings", Subtitle: "Desserts with caramelized depth"},
	{ID: model.CategoryCellar, Label: "Cellar Pairings", Subtitle: "Wines, cocktails, and whiskey service"},
}

// Items returns every menu item in declaration order.
func Items() []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// ByID looks up a single item.
func ByID(id string) (model.Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it.Clone(), nil
		}
	}
	return model.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
}

// Categories returns chapter metadata in display order.
func Categories() []model.CategoryInfo {
	return append([]model.CategoryInfo(nil), categories...)
}

// Info returns the metadata for one category. The zero value comes back
// for ids outside the enumeration.
func Info(c model.Category) model.CategoryInfo {
	for _, info := range categories {
		if info.ID == c {
			return info
		}
	}
	return model.CategoryInfo{}
}

// CountByCategory is the "N dishes" figure printed on each chapter chip.
func CountByCategory() map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		counts[c] = 0
	}
	for _, it := range items {
		counts[it.Category]++
	}
	return counts
}

// Validate checks the catalog invariants: unique ids, categories from the
// fixed enumeration, known heat levels, no duplicate dietary tags, and
// category metadata one-to-one with the enumeration.
func Validate() error {
	return validate(items, categories)
}

func validate(list []model.Item, infos []model.CategoryInfo) error {
	var errs []error

	if len(infos) != len(model.Categories) {
		errs = append(errs, fmt.Errorf("have %d category records, want %d", len(infos), len(model.Categories)))
	}
	seenInfo := map[model.Category]bool{}
	for _, info := range infos {
		if !info.ID.Valid() {
			errs = append(errs, fmt.Errorf("category record %q: not in enumeration", info.ID))
		}
		if seenInfo[info.ID] {
			errs = append(errs, fmt.Errorf("category record %q: duplicate", info.ID))
		}
		seenInfo[info.ID] = true
	}

	seen := map[string]bool{}
	for _, it := range list {
		if it.ID == "" {
			errs = append(errs, errors.New("item with empty id"))
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("item %s: duplicate id", it.ID))
		}
		seen[it.ID] = true

		if !it.Category.Valid() {
			errs = append(errs, fmt.Errorf("item %s: unknown category %q", it.ID, it.Category))
		}
		switch it.Heat {
		case model.HeatMild, model.HeatWarm, model.HeatBold:
		default:
			errs = append(errs, fmt.Errorf("item %s: unknown heat %q", it.ID, it.Heat))
		}

		tags := map[model.DietaryTag]bool{}
		for _, tag := range it.Dietary {
			if tags[tag] {
				errs = append(errs, fmt.Errorf("item %s: duplicate dietary tag %q", it.ID, tag))
			}
			tags[tag] = true
		}
		if len(it.Allergens) == 0 {
			errs = append(errs, fmt.Errorf("item %s: allergens must list %q when empty", it.ID, NoAllergens))
		}
	}
	return errors.Join(errs...)
}

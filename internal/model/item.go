package model

import "strings"

// Category is a top-level menu chapter.
type Category string

const (
	CategoryEarth  Category = "earth"
	CategoryFire   Category = "fire"
	CategorySea    Category = "sea"
	CategoryHearth Category = "hearth"
	CategorySweet  Category = "sweet"
	CategoryCellar Category = "cellar"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryEarth,
	CategoryFire,
	CategorySea,
	CategoryHearth,
	CategorySweet,
	CategoryCellar,
}

// Valid reports whether c is one of the six fixed chapters.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a category id in any case.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Heat is the intensity badge shown on every dish.
type Heat string

const (
	HeatMild Heat = "Mild"
	HeatWarm Heat = "Warm"
	HeatBold Heat = "Bold"
)

// Item is the domain model for a dish or drink on the menu.
// Items are compiled in and never mutated after startup.
type Item struct {
	ID          string       `json:"id"`
	Category    Category     `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	Image       string       `json:"image"`
	Ingredients []string     `json:"ingredients"`
	Allergens   []string     `json:"allergens"`
	Pairing     string       `json:"pairing"`
	Dietary     []DietaryTag `json:"dietary"`
	Heat        Heat         `json:"heat"`
}

// HasTag reports whether the item carries the dietary tag.
func (it Item) HasTag(tag DietaryTag) bool {
	for _, t := range it.Dietary {
		if t == tag {
			return true
		}
	}
	return false
}

// SearchText is the haystack used by free-text search: name, description
// and every ingredient joined by single spaces.
func (it Item) SearchText() string {
	parts := make([]string, 0, len(it.Ingredients)+2)
	parts = append(parts, it.Name, it.Description)
	parts = append(parts, it.Ingredients...)
	return strings.Join(parts, " ")
}

// Clone returns a deep copy so callers can't reach into catalog slices.
func (it Item) Clone() Item {
	out := it
	out.Ingredients = append([]string(nil), it.Ingredients...)
	out.Allergens = append([]string(nil), it.Allergens...)
	out.Dietary = append([]DietaryTag(nil), it.Dietary...)
	return out
}

// CategoryInfo is the display metadata for a category.
type CategoryInfo struct {
	ID       Category `json:"id"`
	Label    string   `json:"label"`
	Subtitle string   `json:"subtitle"`
}

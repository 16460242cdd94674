package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryTagHasLabel(t *testing.T) {
	assert.Len(t, tagLabels, len(DietaryTags))
	for _, tag := range DietaryTags {
		_, ok := tagLabels[tag]
		assert.True(t, ok, "missing label for %q", tag)
	}
}

func TestEveryFilterHasLabel(t *testing.T) {
	assert.Len(t, filterLabels, len(DietaryFilters))
	for _, f := range DietaryFilters {
		assert.True(t, f.Valid(), "filter %q should be valid", f)
	}
	assert.Equal(t, "Chef Signature", DietaryFilter(TagSignature).Label())
	assert.Equal(t, "Signature", TagSignature.Label())
}

func TestParseDietaryFilter(t *testing.T) {
	cases := map[string]DietaryFilter{
		"all":         DietaryAll,
		"":            DietaryAll,
		"gf":          DietaryFilter(TagGlutenFree),
		"Gluten-Free": DietaryFilter(TagGlutenFree),
		"vegetarian":  DietaryFilter(TagVegetarian),
		" VEGAN ":     DietaryFilter(TagVegan),
		"signature":   DietaryFilter(TagSignature),
	}
	for in, want := range cases {
		got, ok := ParseDietaryFilter(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseDietaryFilter("keto")
	assert.False(t, ok)
}

func TestDietaryFilterCycle(t *testing.T) {
	f := DietaryAll
	seen := map[DietaryFilter]bool{}
	for range DietaryFilters {
		seen[f] = true
		f = f.Next()
	}
	assert.Equal(t, DietaryAll, f, "cycling through every chip should wrap to all")
	assert.Len(t, seen, len(DietaryFilters))
	assert.Equal(t, DietaryFilter(TagGlutenFree), DietaryAll.Prev())
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" Fire ")
	assert.True(t, ok)
	assert.Equal(t, CategoryFire, c)

	_, ok = ParseCategory("lunch")
	assert.False(t, ok)
}

func TestItemSearchTextAndClone(t *testing.T) {
	it := Item{
		Name:        "Coal Flatbread",
		Description: "Whipped feta.",
		Ingredients: []string{"Flatbread", "Feta"},
		Dietary:     []DietaryTag{TagVegetarian},
	}
	assert.Equal(t, "Coal Flatbread Whipped feta. Flatbread Feta", it.SearchText())
	assert.True(t, it.HasTag(TagVegetarian))
	assert.False(t, it.HasTag(TagVegan))

	cp := it.Clone()
	cp.Ingredients[0] = "changed"
	assert.Equal(t, "Flatbread", it.Ingredients[0])
}

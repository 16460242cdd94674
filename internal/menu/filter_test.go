package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestCategoryFilterKeepsDeclarationOrder(t *testing.T) {
	all := catalog.Items()
	for _, c := range model.Categories {
		var want []string
		for _, it := range all {
			if it.Category == c {
				want = append(want, it.ID)
			}
		}
		got := ids(Apply(all, DefaultFilter(c)))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("category %s (-want +got):\n%s", c, diff)
		}
	}
}

func TestFireScenario(t *testing.T) {
	all := catalog.Items()
	f := DefaultFilter(model.CategoryFire)

	got := ids(Apply(all, f))
	want := []string{"fire-01", "fire-02", "fire-03", "fire-04", "fire-05", "fire-06"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fire/all (-want +got):\n%s", diff)
	}

	f.Dietary = model.DietaryFilter(model.TagGlutenFree)
	got = ids(Apply(all, f))
	want = []string{"fire-01", "fire-02", "fire-03", "fire-05"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fire/gf (-want +got):\n%s", diff)
	}
}

func TestSignatureFilter(t *testing.T) {
	all := catalog.Items()
	for _, c := range model.Categories {
		f := Filter{Category: c, Dietary: model.DietaryFilter(model.TagSignature)}
		for _, it := range Apply(all, f) {
			assert.True(t, it.HasTag(model.TagSignature), it.ID)
		}
		for _, it := range all {
			if it.Category == c && it.HasTag(model.TagSignature) {
				assert.True(t, f.Matches(it), it.ID)
			}
		}
	}
}

func TestDietaryAllIsCategorySet(t *testing.T) {
	all := catalog.Items()
	for _, c := range model.Categories {
		withAll := Apply(all, Filter{Category: c, Dietary: model.DietaryAll})
		assert.Len(t, withAll, catalog.CountByCategory()[c])
	}
}

func TestQueryIsTrimmedAndCaseInsensitive(t *testing.T) {
	all := catalog.Items()
	f := Filter{Category: model.CategoryFire, Dietary: model.DietaryAll, Query: " RIBEYE "}
	got := ids(Apply(all, f))
	assert.Equal(t, []string{"fire-01"}, got)
}

func TestQueryMatchesIngredientsAndDescription(t *testing.T) {
	all := catalog.Items()

	// "pepper jus" is only in fire-01's description and ingredients.
	f := Filter{Category: model.CategoryFire, Dietary: model.DietaryAll, Query: "pepper jus"}
	assert.Equal(t, []string{"fire-01"}, ids(Apply(all, f)))

	// "cedar smoke" is an ingredient of fire-05.
	f.Query = "Cedar Smoke"
	assert.Equal(t, []string{"fire-05"}, ids(Apply(all, f)))
}

func TestQueryCanSpanFields(t *testing.T) {
	all := catalog.Items()
	// name "Coal Flatbread" is followed by a space and the description.
	f := Filter{Category: model.CategoryHearth, Dietary: model.DietaryAll, Query: "flatbread whipped"}
	assert.Equal(t, []string{"hearth-05"}, ids(Apply(all, f)))
}

func TestNoMatches(t *testing.T) {
	all := catalog.Items()
	f := Filter{Category: model.CategoryFire, Dietary: model.DietaryAll, Query: "zzzzz"}
	got := Apply(all, f)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWhitespaceQueryMatchesEverything(t *testing.T) {
	all := catalog.Items()
	f := Filter{Category: model.CategorySea, Dietary: model.DietaryAll, Query: "   \t"}
	assert.Len(t, Apply(all, f), 6)
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	all := catalog.Items()
	before := ids(all)
	Apply(all, Filter{Category: model.CategoryCellar, Dietary: model.DietaryFilter(model.TagVegan)})
	assert.Equal(t, before, ids(all))
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

func mustItem(t *testing.T, id string) model.Item {
	t.Helper()
	it, err := catalog.ByID(id)
	require.NoError(t, err)
	return it
}

func TestSelectReplacesWithoutStacking(t *testing.T) {
	var lock scrolllock.Lock
	sel := NewSelection(&lock)

	sel.Select(mustItem(t, "fire-01"))
	assert.True(t, lock.Suspended())
	assert.Equal(t, 1, lock.Holders())

	sel.Select(mustItem(t, "sea-02"))
	active, ok := sel.Active()
	require.True(t, ok)
	assert.Equal(t, "sea-02", active.ID)
	assert.Equal(t, 1, lock.Holders(), "replacing a selection must not take the lock twice")

	sel.Clear()
	assert.False(t, sel.Open())
	assert.False(t, lock.Suspended())
	assert.Equal(t, 0, lock.Holders())
}

func TestClearRestoresPriorLockState(t *testing.T) {
	var lock scrolllock.Lock
	drawer := lock.Acquire()

	sel := NewSelection(&lock)
	sel.Select(mustItem(t, "earth-01"))
	sel.Clear()
	assert.True(t, lock.Suspended(), "drawer still holds the lock")

	drawer()
	assert.False(t, lock.Suspended())
}

func TestClearWhenClosedIsNoop(t *testing.T) {
	var lock scrolllock.Lock
	sel := NewSelection(&lock)
	sel.Clear()
	sel.Clear()
	assert.False(t, lock.Suspended())
	_, ok := sel.Active()
	assert.False(t, ok)
}

func TestSelectionKeepsItsOwnCopy(t *testing.T) {
	sel := NewSelection(nil)
	it := mustItem(t, "fire-02")
	sel.Select(it)
	it.Name = "changed"

	active, _ := sel.Active()
	assert.Equal(t, "Coal-Hung Lamb Saddle", active.Name)
}

func TestAtlasRecomputesOnEveryChange(t *testing.T) {
	var lock scrolllock.Lock
	a := NewAtlas(catalog.Items(), DefaultFilter(catalog.DefaultCategory), &lock)
	assert.Len(t, a.Visible(), 6)

	assert.True(t, a.SetDietary(model.DietaryFilter(model.TagGlutenFree)))
	assert.Equal(t, []string{"fire-01", "fire-02", "fire-03", "fire-05"}, ids(a.Visible()))
	assert.False(t, a.SetDietary(model.DietaryFilter(model.TagGlutenFree)))
	assert.False(t, a.SetDietary("keto"))

	assert.True(t, a.SetQuery("duck"))
	assert.Equal(t, []string{"fire-05"}, ids(a.Visible()))

	assert.True(t, a.SetQuery("zzzzz"))
	assert.True(t, a.Empty())

	assert.True(t, a.SetCategory(model.CategorySea))
	assert.Equal(t, model.CategorySea, a.Filter().Category)
	assert.Equal(t, "zzzzz", a.Filter().Query, "switching chapters keeps the query")
	assert.False(t, a.SetCategory("lunch"))
}

func TestAtlasStepCategoryWraps(t *testing.T) {
	a := NewAtlas(catalog.Items(), DefaultFilter(model.CategoryCellar), nil)
	a.StepCategory(1)
	assert.Equal(t, model.CategoryEarth, a.Filter().Category)
	a.StepCategory(-1)
	assert.Equal(t, model.CategoryCellar, a.Filter().Category)
}

package index

import (
	"testing"

	"github.com/kiosk404/worldlogic/internal/bundle"
	"github.com/kiosk404/worldlogic/internal/reqlang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildBasicTables(t *testing.T) {
	tables := bundle.Tables{
		Game: bundle.GameDoc{FillerItemName: "Rupee"},
		Items: []bundle.ItemDoc{
			{Name: "Lamp", Count: ptr(1)},
			{Name: "Heart Piece", Count: ptr(4), Category: []string{"Collectible"}},
		},
		Locations: []bundle.LocationDoc{
			{Name: "Start Chest", Requires: "|Lamp|", Category: []string{"Collectible"}},
		},
		Categories: map[string]bundle.CategoryDoc{
			"Collectible": {YamlOption: []string{"enable_hearts"}},
		},
		Yaml: map[string]int{"enable_hearts": 1},
	}

	idx, diags := Build(tables)
	assert.Empty(t, diags)

	n, ok := idx.ItemCount.Get("Lamp")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = idx.ItemCount.Get("Rupee")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	cats, ok := idx.ItemToCategories.Get("Lamp")
	assert.True(t, ok)
	assert.True(t, cats.Contains(noCategory))

	cc, ok := idx.CategoryCount.Get("Collectible")
	assert.True(t, ok)
	assert.Equal(t, 4, cc)

	tr, ok := idx.LocationsToLogic.Get("Start Chest")
	assert.True(t, ok)
	assert.True(t, reqlang.Equal(reqlang.NewItem("Lamp"), tr))

	locs, ok := idx.CategoryToLocations.Get("Collectible")
	assert.True(t, ok)
	assert.True(t, locs.Contains("Start Chest"))
}

func TestBuildHiddenLocationExcludedFromCategoryIndex(t *testing.T) {
	tables := bundle.Tables{
		Locations: []bundle.LocationDoc{
			{Name: "Secret", Hidden: ptr(true), Category: []string{"Cat"}},
		},
		Categories: map[string]bundle.CategoryDoc{
			"Cat": {Hidden: ptr(true)},
		},
	}
	idx, _ := Build(tables)
	assert.True(t, idx.HiddenCategories.Contains("Cat"))
	_, ok := idx.CategoryToLocations.Get("Cat")
	assert.False(t, ok)
}

func TestBuildWithRegionSynthesis(t *testing.T) {
	tables := bundle.Tables{
		Locations: []bundle.LocationDoc{
			{Name: "End Chest", Requires: "|Sword|", Region: "End"},
		},
		Regions: map[string]bundle.RegionDoc{
			"Start": {Starting: ptr(true), ConnectsTo: []string{"Mid"}},
			"Mid":   {Requires: "|Key|", ConnectsTo: []string{"End"}},
			"End":   {Requires: "|Gem|"},
		},
	}
	idx, diags := Build(tables)
	assert.Empty(t, diags)

	tr, ok := idx.LocationsToLogic.Get("End Chest")
	require.True(t, ok)
	want := reqlang.And(reqlang.NewItem("Sword"), reqlang.And(reqlang.NewItem("Key"), reqlang.NewItem("Gem")))
	assert.True(t, reqlang.Equal(want, tr))
}

func TestBuildRecordsParseDiagnosticsWithoutFailingOtherLocations(t *testing.T) {
	tables := bundle.Tables{
		Locations: []bundle.LocationDoc{
			{Name: "Broken", Requires: "|Unterminated"},
			{Name: "Fine", Requires: "|Lamp|"},
		},
	}
	idx, diags := Build(tables)
	require.Len(t, diags, 1)
	assert.Equal(t, "location:Broken", diags[0].Subject)

	tr, ok := idx.LocationsToLogic.Get("Broken")
	assert.True(t, ok)
	assert.Nil(t, tr)

	tr, ok = idx.LocationsToLogic.Get("Fine")
	assert.True(t, ok)
	assert.True(t, reqlang.Equal(reqlang.NewItem("Lamp"), tr))
}

func TestBuildTransposesCategoriesCorrectly(t *testing.T) {
	tables := bundle.Tables{
		Items: []bundle.ItemDoc{
			{Name: "A", Category: []string{"X", "Y"}},
			{Name: "B", Category: []string{"X"}},
		},
	}
	idx, _ := Build(tables)
	xs, ok := idx.CategoryToItems.Get("X")
	require.True(t, ok)
	assert.True(t, xs.Contains("A"))
	assert.True(t, xs.Contains("B"))

	aCats, ok := idx.ItemToCategories.Get("A")
	require.True(t, ok)
	assert.True(t, aCats.Contains("X"))
	assert.True(t, aCats.Contains("Y"))
}

package region

import (
	"testing"

	"github.com/kiosk404/worldlogic/internal/reqlang"
	"github.com/stretchr/testify/assert"
)

// Start (starting) -> Mid (requires |Key|) -> End
// (requires |Gem|); location requires |Sword| lands in End.
func TestReachSynthesisScenario(t *testing.T) {
	g := NewGraph([]*Region{
		{Name: "Start", Starting: true, Edges: []Edge{{To: "Mid"}}},
		{Name: "Mid", Requires: "|Key|", Edges: []Edge{{To: "End"}}},
		{Name: "End", Requires: "|Gem|"},
	})
	res := NewResolver(g)
	reach := res.Reach("End")

	locationTree, err := reqlang.Parse("|Sword|")
	assert.NoError(t, err)
	full := reqlang.And(locationTree, reach)

	want := reqlang.And(reqlang.NewItem("Sword"), reqlang.And(reqlang.NewItem("Key"), reqlang.NewItem("Gem")))
	assert.True(t, reqlang.Equal(want, full))
}

func TestReachUnreachableTargetYieldsNil(t *testing.T) {
	g := NewGraph([]*Region{
		{Name: "Start", Starting: true},
		{Name: "Island"},
	})
	res := NewResolver(g)
	assert.Nil(t, res.Reach("Island"))
}

func TestReachExcludesOtherStartingRegions(t *testing.T) {
	// Two starting regions, each with its own branch to Target; the path
	// entering via the other start's territory must not be counted.
	g := NewGraph([]*Region{
		{Name: "StartA", Starting: true, Edges: []Edge{{To: "Target"}}},
		{Name: "StartB", Starting: true, Edges: []Edge{{To: "StartA"}}},
		{Name: "Target", Requires: "|Goal|"},
	})
	res := NewResolver(g)
	reach := res.Reach("Target")
	// Only StartA's direct edge contributes; StartB's path goes through
	// StartA, which is excluded from StartB's walk.
	assert.True(t, reqlang.Equal(reqlang.NewItem("Goal"), reach))
}

func TestReachHandlesCycleWithoutInfiniteRecursion(t *testing.T) {
	g := NewGraph([]*Region{
		{Name: "Start", Starting: true, Edges: []Edge{{To: "Loop"}}},
		{Name: "Loop", Edges: []Edge{{To: "Loop"}, {To: "End"}}},
		{Name: "End", Requires: "|Key|"},
	})
	res := NewResolver(g)
	reach := res.Reach("End")
	assert.True(t, reqlang.Equal(reqlang.NewItem("Key"), reach))
}

func TestExitRequiresIsConjoined(t *testing.T) {
	g := NewGraph([]*Region{
		{Name: "Start", Starting: true, Edges: []Edge{{To: "End", ExitRequires: "|Bridge|"}}},
		{Name: "End", Requires: "|Key|"},
	})
	res := NewResolver(g)
	reach := res.Reach("End")
	want := reqlang.And(reqlang.NewItem("Key"), reqlang.NewItem("Bridge"))
	assert.True(t, reqlang.Equal(want, reach))
}

func TestMalformedRegionRequiresIsRecordedNotFatal(t *testing.T) {
	g := NewGraph([]*Region{
		{Name: "Start", Starting: true, Requires: "|Unterminated", Edges: []Edge{{To: "End"}}},
		{Name: "End", Requires: "|Key|"},
	})
	res := NewResolver(g)
	reach := res.Reach("End")
	assert.True(t, reqlang.Equal(reqlang.NewItem("Key"), reach))
	assert.NotEmpty(t, res.ParseErrors())
}

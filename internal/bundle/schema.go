// Package bundle implements opening a world archive, extracting its
// six JSON tables, and falling back to an external helper process when
// a bundle ships extraction code instead of pre-computed JSON.
package bundle

import "github.com/bytedance/gg/gptr"

// tableNames are the six JSON documents a bundle (or the helper
// subprocess's single combined object) must supply, matched by path
// suffix under any prefix ending in "data/".
var tableNames = [...]string{
	"game.json",
	"items.json",
	"locations.json",
	"categories.json",
	"options.json",
	"regions.json",
}

// GameDoc is the decoded shape of data/game.json. Only the one field
// the index builder consults is modelled; unknown keys are ignored by
// encoding/json's default decoding behaviour.
type GameDoc struct {
	FillerItemName string `json:"filler_item_name"`
}

// PhantomValue holds an item's optional phantom-item contribution.
type PhantomValue struct {
	Phantom *int `json:"phantom,omitempty"`
}

// ItemDoc is one entry of data/items.json.
type ItemDoc struct {
	Name     string        `json:"name"`
	Count    *int          `json:"count,omitempty"`
	Category []string      `json:"category,omitempty"`
	Value    *PhantomValue `json:"value,omitempty"`
}

// EffectiveCount returns the declared count, defaulting to 1 when the
// bundle omits it.
func (d ItemDoc) EffectiveCount() int {
	return gptr.IndirectOr(d.Count, 1)
}

// Phantom returns the phantom contribution amount, or 0 if this item
// contributes none.
func (d ItemDoc) Phantom() int {
	if d.Value == nil {
		return 0
	}
	return gptr.IndirectOr(d.Value.Phantom, 0)
}

// LocationDoc is one entry of data/locations.json.
type LocationDoc struct {
	Name     string   `json:"name"`
	Requires string   `json:"requires,omitempty"`
	Region   string   `json:"region,omitempty"`
	Hidden   *bool    `json:"hidden,omitempty"`
	Category []string `json:"category,omitempty"`
	Victory  *bool    `json:"victory,omitempty"`
}

func (d LocationDoc) IsHidden() bool  { return gptr.IndirectOr(d.Hidden, false) }
func (d LocationDoc) IsVictory() bool { return gptr.IndirectOr(d.Victory, false) }

// CategoryDoc is the value type of data/categories.json's object map.
type CategoryDoc struct {
	Hidden     *bool    `json:"hidden,omitempty"`
	YamlOption []string `json:"yaml_option,omitempty"`
}

func (d CategoryDoc) IsHidden() bool { return gptr.IndirectOr(d.Hidden, false) }

// RegionDoc is the value type of data/regions.json's object map.
type RegionDoc struct {
	Requires      string            `json:"requires,omitempty"`
	ConnectsTo    []string          `json:"connects_to,omitempty"`
	ExitRequires  map[string]string `json:"exit_requires,omitempty"`
	Starting      *bool             `json:"starting,omitempty"`
}

func (d RegionDoc) IsStarting() bool { return gptr.IndirectOr(d.Starting, false) }

// Tables is the fully decoded, still-raw form of the six JSON
// documents, before the index builder turns them into frozen lookup
// tables.
type Tables struct {
	Game       GameDoc
	Items      []ItemDoc
	Locations  []LocationDoc
	Categories map[string]CategoryDoc
	// Yaml holds each option's current/default value, already coerced
	// to an int (booleans to 0/1) by the gjson-driven decode in
	// helper.go, since options.json's per-option shape is heterogeneous
	// and not worth a rigid struct.
	Yaml    map[string]int
	Regions map[string]RegionDoc
}

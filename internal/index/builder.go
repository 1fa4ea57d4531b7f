// Package index turns the raw JSON tables a bundle load extracts into
// frozen lookup tables ready for fast reachability queries.
package index

import (
	"strconv"
	"strings"

	"github.com/kiosk404/worldlogic/internal/bundle"
	"github.com/kiosk404/worldlogic/internal/container"
	"github.com/kiosk404/worldlogic/internal/region"
	"github.com/kiosk404/worldlogic/internal/reqlang"
)

// noCategory is the synthetic category assigned to items that declare
// none.
const noCategory = "(No Category)"

// PhantomContribution is one (phantomName, count) pair an item
// contributes. The bundle JSON shape only ever expresses a single
// unnamed phantom pool per item, so every contribution built from it
// carries the name "phantom" — the same literal the evaluator's
// ItemValue(phantom:k) argument names.
type PhantomContribution struct {
	Name  string
	Count int
}

// Diagnostic is a parse-failure record surfaced to the caller's logger:
// the affected location or region, and the error that explains why it
// has no synthesised requirement.
type Diagnostic struct {
	Subject string
	Err     *reqlang.ParseError
}

// Index is the complete set of frozen lookup tables, immutable once
// Build returns.
type Index struct {
	HiddenCategories       container.Set
	LocationsToLogic       container.Map[*reqlang.Tree]
	CategoryToLocations    container.Map[container.Set]
	CategoryToYamlOptions  container.Map[container.Set]
	CategoryToItems        container.Map[container.Set]
	ItemToCategories       container.Map[container.Set]
	ItemCount              container.Map[int]
	CategoryCount          container.Map[int]
	ItemToPhantoms         container.Map[[]PhantomContribution]
	Yaml                   container.Map[int]
}

// Build constructs an Index from the raw tables, parsing every
// location's (and, transitively, every region's) requires text and
// synthesising region-traversal requirements via internal/region.
// Parse failures are non-fatal: the affected location's own requires
// is dropped (nil, i.e. vacuously satisfied), leaving only its region
// requirement if it has one, and the failures are returned alongside
// the Index as diagnostics for the caller to log.
func Build(tables bundle.Tables) (*Index, []Diagnostic) {
	var diags []Diagnostic

	hidden, categoryToYamlOptions := buildCategoryTables(tables.Categories)

	itemCount := map[string]int{}
	itemToCategories := map[string][]string{}
	itemToPhantoms := map[string][]PhantomContribution{}
	for _, item := range tables.Items {
		cats := item.Category
		if len(cats) == 0 {
			cats = []string{noCategory}
		}
		itemCount[item.Name] = item.EffectiveCount()
		itemToCategories[item.Name] = cats
		if p := item.Phantom(); p > 0 {
			itemToPhantoms[item.Name] = []PhantomContribution{{Name: "phantom", Count: p}}
		}
	}
	if tables.Game.FillerItemName != "" {
		name := tables.Game.FillerItemName
		if _, ok := itemCount[name]; !ok {
			itemCount[name] = 1
			itemToCategories[name] = []string{noCategory}
		}
	}

	var resolver *region.Resolver
	if len(tables.Regions) > 0 {
		resolver = region.NewResolver(buildGraph(tables.Regions))
	}

	locationsToLogic := map[string]*reqlang.Tree{}
	categoryToLocations := map[string][]string{}
	for _, loc := range tables.Locations {
		tree, err := parseOrNil(loc.Requires)
		if err != nil {
			diags = append(diags, Diagnostic{Subject: "location:" + loc.Name, Err: err})
		}
		if loc.Region != "" && resolver != nil {
			tree = reqlang.And(tree, resolver.Reach(loc.Region))
		}
		locationsToLogic[loc.Name] = tree

		if loc.IsHidden() {
			continue
		}
		for _, cat := range loc.Category {
			categoryToLocations[cat] = append(categoryToLocations[cat], loc.Name)
		}
	}
	if resolver != nil {
		for subject, err := range resolver.ParseErrors() {
			if perr, ok := err.(*reqlang.ParseError); ok {
				diags = append(diags, Diagnostic{Subject: subject, Err: perr})
			}
		}
	}

	categoryToItems := transpose(itemToCategories)
	categoryCount := map[string]int{}
	for cat, items := range categoryToItems {
		sum := 0
		for _, i := range items {
			sum += itemCount[i]
		}
		categoryCount[cat] = sum
	}

	idx := &Index{
		HiddenCategories:      container.NewSet(hidden),
		LocationsToLogic:      container.NewMap(locationsToLogic),
		CategoryToLocations:   toSetMap(categoryToLocations),
		CategoryToYamlOptions: categoryToYamlOptions,
		CategoryToItems:       toSetMap(categoryToItems),
		ItemToCategories:      toSetMap(itemToCategories),
		ItemCount:             container.NewMap(itemCount),
		CategoryCount:         container.NewMap(categoryCount),
		ItemToPhantoms:        container.NewMap(itemToPhantoms),
		Yaml:                  container.NewMap(tables.Yaml),
	}
	return idx, diags
}

func buildCategoryTables(categories map[string]bundle.CategoryDoc) ([]string, container.Map[container.Set]) {
	var hidden []string
	options := map[string][]string{}
	for name, doc := range categories {
		if doc.IsHidden() {
			hidden = append(hidden, name)
		}
		options[name] = doc.YamlOption
	}
	return hidden, toSetMap(options)
}

func buildGraph(regions map[string]bundle.RegionDoc) *region.Graph {
	var rs []*region.Region
	for name, doc := range regions {
		var edges []region.Edge
		for _, to := range doc.ConnectsTo {
			edges = append(edges, region.Edge{To: to, ExitRequires: doc.ExitRequires[to]})
		}
		rs = append(rs, &region.Region{
			Name:     name,
			Requires: doc.Requires,
			Edges:    edges,
			Starting: doc.IsStarting(),
		})
	}
	return region.NewGraph(rs)
}

func parseOrNil(requires string) (*reqlang.Tree, *reqlang.ParseError) {
	if strings.TrimSpace(requires) == "" {
		return nil, nil
	}
	tree, err := reqlang.Parse(requires)
	if err != nil {
		if perr, ok := err.(*reqlang.ParseError); ok {
			return nil, perr
		}
		return nil, nil
	}
	return tree, nil
}

func transpose(m map[string][]string) map[string][]string {
	out := map[string][]string{}
	for k, vs := range m {
		for _, v := range vs {
			out[v] = append(out[v], k)
		}
	}
	return out
}

func toSetMap(m map[string][]string) container.Map[container.Set] {
	out := map[string]container.Set{}
	for k, vs := range m {
		out[k] = container.NewSet(vs)
	}
	return container.NewMap(out)
}

// ParseIntOrZero parses a stored count/threshold string (the bare
// digits a Count/Percent node carries) into an int, defaulting to 0 on
// any malformed value rather than erroring — the evaluator's contract
// never fails on bad data, only reports it unmet.
func ParseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

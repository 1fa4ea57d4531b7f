// Package region synthesises region-traversal requirements from a
// world's region graph: for each region, the disjunction
// of everything encountered walking in from any starting region.
package region

// Edge is a directed connection from one region to another, carrying an
// optional raw requires string that gates taking it. Parsing is the
// resolver's job, not the graph's, so the same edge text is parsed at
// most once per resolver invocation.
type Edge struct {
	To           string
	ExitRequires string
}

// Region is one node of the graph: its own raw requires text plus its
// outbound edges. Starting marks it as a valid graph entry point.
type Region struct {
	Name     string
	Requires string
	Edges    []Edge
	Starting bool
}

// Graph is the full region table for one world, keyed by region name.
type Graph struct {
	regions map[string]*Region
	order   []string
}

// NewGraph builds a Graph from the caller-supplied region list. Region
// names are matched by exact string equality (a plain map here, and ==
// in the resolver), not under the canonical comparator, so names that
// collate equal but differ in bytes (e.g. "Room 02" and "Room 2") are
// distinct regions. The graph is
// consulted only during synthesis, at load time, and is discarded
// once locationsToLogic is built — it never becomes part of the frozen
// tables, so it carries none of the ordering guarantees those do.
func NewGraph(regions []*Region) *Graph {
	g := &Graph{regions: make(map[string]*Region, len(regions))}
	for _, r := range regions {
		g.regions[r.Name] = r
		g.order = append(g.order, r.Name)
	}
	return g
}

func (g *Graph) lookup(name string) (*Region, bool) {
	r, ok := g.regions[name]
	return r, ok
}

// StartingRegions returns the names of every region flagged as a graph
// entry point, in the order they were supplied.
func (g *Graph) StartingRegions() []string {
	var out []string
	for _, name := range g.order {
		if r := g.regions[name]; r.Starting {
			out = append(out, name)
		}
	}
	return out
}

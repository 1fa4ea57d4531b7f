package region

import "github.com/kiosk404/worldlogic/internal/reqlang"

// Resolver synthesises Reach(region) trees over one Graph. It owns a
// requires-text parse cache that is local to this Resolver value — the
// cache must never leak into the frozen tables the index builder
// produces, so a Resolver is built, used to resolve every location's
// region, and then dropped.
type Resolver struct {
	graph *Graph
	cache map[string]*reqlang.Tree
	// badParses collects region and exit requires text that failed to
	// parse, keyed by a "region:<name>" or "exit:<from>-><to>" label,
	// for the caller to report as diagnostics.
	badParses map[string]error
}

// NewResolver creates a Resolver bound to g.
func NewResolver(g *Graph) *Resolver {
	return &Resolver{graph: g, cache: map[string]*reqlang.Tree{}, badParses: map[string]error{}}
}

// ParseErrors returns the parse errors accumulated while resolving
// region or exit requires text, keyed by a diagnostic label.
func (res *Resolver) ParseErrors() map[string]error { return res.badParses }

func (res *Resolver) parse(label, src string) *reqlang.Tree {
	if src == "" {
		return nil
	}
	if t, ok := res.cache[label+"\x00"+src]; ok {
		return t
	}
	t, err := reqlang.Parse(src)
	if err != nil {
		res.badParses[label] = err
		return nil
	}
	res.cache[label+"\x00"+src] = t
	return t
}

func (res *Resolver) regionRequires(r *Region) *reqlang.Tree {
	return res.parse("region:"+r.Name, r.Requires)
}

func (res *Resolver) exitRequires(from, to, src string) *reqlang.Tree {
	return res.parse("exit:"+from+"->"+to, src)
}

// Reach computes the disjunction: over every starting region other
// than target that has a path to it, the conjunction of requirements
// encountered walking that path.
func (res *Resolver) Reach(target string) *reqlang.Tree {
	var disjunction *reqlang.Tree
	have := false
	for _, start := range res.graph.StartingRegions() {
		if start == target {
			continue
		}
		region, ok := res.graph.lookup(start)
		if !ok {
			continue
		}
		visited := map[string]bool{}
		for _, other := range res.graph.StartingRegions() {
			if other != start {
				visited[other] = true
			}
		}
		reached, tree := res.walk(region, target, visited)
		if !reached {
			continue
		}
		// nil already means "vacuously satisfied" (∅), so it cannot
		// double as the empty-disjunction seed: the first contributing
		// branch is taken as-is, later branches are OR-combined with it.
		if !have {
			disjunction, have = tree, true
			continue
		}
		disjunction = reqlang.Or(disjunction, tree)
	}
	return disjunction
}

// walk is the cycle-guarded DFS search. It returns whether target was
// reached along any path rooted at region, and if so the AND of every
// requirement collected along each such path, OR-combined across all
// reaching branches at this node.
func (res *Resolver) walk(r *Region, target string, visited map[string]bool) (bool, *reqlang.Tree) {
	if r.Name == target {
		return true, res.regionRequires(r)
	}

	next := make(map[string]bool, len(visited)+1)
	for k := range visited {
		next[k] = true
	}
	next[r.Name] = true

	var branchDisjunction *reqlang.Tree
	reachedAny := false
	for _, e := range r.Edges {
		if next[e.To] {
			continue
		}
		neighbor, ok := res.graph.lookup(e.To)
		if !ok {
			continue
		}
		reached, sub := res.walk(neighbor, target, next)
		if !reached {
			continue
		}
		combined := reqlang.And(sub, res.exitRequires(r.Name, e.To, e.ExitRequires))
		if !reachedAny {
			branchDisjunction = combined
		} else {
			branchDisjunction = reqlang.Or(branchDisjunction, combined)
		}
		reachedAny = true
	}
	if !reachedAny {
		return false, nil
	}
	return true, reqlang.And(res.regionRequires(r), branchDisjunction)
}

// Package container implements the "frozen sorted mapping" primitive
// shared by the index builder and the evaluator: a hash lookup for O(1)
// membership plus a stable ordered view, built once from unordered input
// and immutable afterward. Every container here is keyed under
// collate.Compare; there is no way to construct one with any other
// comparator.
package container

import (
	"sort"

	"github.com/kiosk404/worldlogic/internal/collate"
)

// Set is a frozen sorted set of strings.
type Set struct {
	items []string
	index map[string]int
}

// NewSet builds a Set from an unordered, possibly-duplicated slice.
func NewSet(items []string) Set {
	seen := make(map[string]struct{}, len(items))
	uniq := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		uniq = append(uniq, it)
	}
	sort.Slice(uniq, func(i, j int) bool { return collate.Less(uniq[i], uniq[j]) })
	index := make(map[string]int, len(uniq))
	for i, it := range uniq {
		index[it] = i
	}
	return Set{items: uniq, index: index}
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Items returns the set's contents in canonical order. The caller must
// not mutate the returned slice.
func (s Set) Items() []string { return s.items }

// Len returns the number of distinct members.
func (s Set) Len() int { return len(s.items) }

// Union returns a new Set containing every member of both sets.
func Union(a, b Set) Set {
	out := make([]string, 0, len(a.items)+len(b.items))
	out = append(out, a.items...)
	out = append(out, b.items...)
	return NewSet(out)
}

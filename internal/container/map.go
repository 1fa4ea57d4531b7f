package container

import (
	"sort"

	"github.com/kiosk404/worldlogic/internal/collate"
)

// Map is a frozen sorted mapping from string keys to values of type V.
type Map[V any] struct {
	keys  []string
	vals  []V
	index map[string]int
}

// NewMap builds a Map from an unordered Go map.
func NewMap[V any](m map[string]V) Map[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return collate.Less(keys[i], keys[j]) })
	vals := make([]V, len(keys))
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
		index[k] = i
	}
	return Map[V]{keys: keys, vals: vals, index: index}
}

// Get returns the value stored under key and whether it was present.
func (m Map[V]) Get(key string) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Keys returns the map's keys in canonical order.
func (m Map[V]) Keys() []string { return m.keys }

// Len returns the number of entries.
func (m Map[V]) Len() int { return len(m.keys) }

// Each calls fn for every entry in canonical key order.
func (m Map[V]) Each(fn func(key string, val V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}

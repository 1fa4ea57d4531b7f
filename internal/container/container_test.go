package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOrderingAndDedup(t *testing.T) {
	s := NewSet([]string{"Key 10", "Key 2", "Key 2", "Key 1"})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"Key 1", "Key 2", "Key 10"}, s.Items())
	assert.True(t, s.Contains("Key 2"))
	assert.False(t, s.Contains("Key 3"))
}

func TestMapOrderingAndLookup(t *testing.T) {
	m := NewMap(map[string]int{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	a := NewSet([]string{"x", "y"})
	b := NewSet([]string{"y", "z"})
	u := Union(a, b)
	assert.Equal(t, []string{"x", "y", "z"}, u.Items())
}

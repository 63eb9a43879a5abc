// Package trie implements a prefix tree from key sequences to values.
package trie

import (
	"cmp"
	"maps"
	"slices"
)

// Trie is one node of a prefix tree. Each child is owned by exactly one
// parent, and every node remembers the key path that leads to it.
type Trie[K cmp.Ordered, V any] struct {
	path     []K
	value    V
	hasValue bool
	children map[K]*Trie[K, V]
}

// Path is a value together with the full key that reaches it.
type Path[K cmp.Ordered, V any] struct {
	Key   []K
	Value V
}

func New[K cmp.Ordered, V any]() *Trie[K, V] {
	return &Trie[K, V]{}
}

// Insert stores v under key, replacing any previous value.
func (t *Trie[K, V]) Insert(key []K, v V) {
	node := t
	for _, k := range key {
		if node.children == nil {
			node.children = make(map[K]*Trie[K, V])
		}
		child, ok := node.children[k]
		if !ok {
			child = &Trie[K, V]{path: append(slices.Clone(node.path), k)}
			node.children[k] = child
		}
		node = child
	}
	node.value = v
	node.hasValue = true
}

// Get returns the value stored under exactly key.
func (t *Trie[K, V]) Get(key []K) (V, bool) {
	node, ok := t.Subtree(key)
	if !ok || !node.hasValue {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Subtree returns the node reached by prefix.
func (t *Trie[K, V]) Subtree(prefix []K) (*Trie[K, V], bool) {
	node := t
	for _, k := range prefix {
		child, ok := node.children[k]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// Key is the path from the root to t.
func (t *Trie[K, V]) Key() []K {
	return slices.Clone(t.path)
}

// All returns every value at or below t, depth first with children in key order.
func (t *Trie[K, V]) All() []V {
	var out []V
	t.walk(func(n *Trie[K, V]) {
		out = append(out, n.value)
	})
	return out
}

// AllPaths is All with the full key of each value.
func (t *Trie[K, V]) AllPaths() []Path[K, V] {
	var out []Path[K, V]
	t.walk(func(n *Trie[K, V]) {
		out = append(out, Path[K, V]{Key: slices.Clone(n.path), Value: n.value})
	})
	return out
}

// Len counts the stored values at or below t.
func (t *Trie[K, V]) Len() int {
	n := 0
	t.walk(func(*Trie[K, V]) { n++ })
	return n
}

func (t *Trie[K, V]) walk(visit func(*Trie[K, V])) {
	if t.hasValue {
		visit(t)
	}
	for _, k := range slices.Sorted(maps.Keys(t.children)) {
		t.children[k].walk(visit)
	}
}

// Package trie implements an ordered prefix trie: an associative
// container keyed by finite sequences of labels, supporting exact
// lookup, ascending lexicographic iteration, and longest-prefix-item —
// the primitive both the substring and trie pattern matchers build on.
package trie

import (
	"sort"

	"github.com/wilkeraziz/pyfst/symbol"
)

type node[V any] struct {
	value      V
	has        bool
	children   map[symbol.Label]*node[V]
	childOrder []symbol.Label // kept sorted, for Iter
}

// Trie is an ordered associative container keyed by []symbol.Label.
type Trie[V any] struct {
	root *node[V]
}

// New creates an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: &node[V]{}}
}

// Insert associates value with key, overwriting any existing entry.
func (t *Trie[V]) Insert(key []symbol.Label, value V) {
	n := t.root
	for _, l := range key {
		n = n.child(l, true)
	}
	n.value = value
	n.has = true
}

// Get returns the value exactly stored at key, if any.
func (t *Trie[V]) Get(key []symbol.Label) (V, bool) {
	n := t.root
	for _, l := range key {
		child, ok := n.children[l]
		if !ok {
			var zero V
			return zero, false
		}
		n = child
	}
	if !n.has {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Entry is a key/value pair as produced by Iter and LongestPrefixItem.
type Entry[V any] struct {
	Key   []symbol.Label
	Value V
}

// Iter calls visit for every stored entry in ascending lexicographic key
// order (a prefix sorts before any sequence it is a strict prefix of).
// Iteration stops early if visit returns false.
func (t *Trie[V]) Iter(visit func(Entry[V]) bool) {
	t.root.walk(nil, visit)
}

// LongestPrefixItem returns the stored entry whose key is the longest
// prefix of key present in the trie, or def if no prefix of key (not
// even the empty one) has been inserted.
func (t *Trie[V]) LongestPrefixItem(key []symbol.Label, def Entry[V]) Entry[V] {
	best := def
	n := t.root
	if n.has {
		best = Entry[V]{Key: nil, Value: n.value}
	}
	for i, l := range key {
		child, ok := n.children[l]
		if !ok {
			break
		}
		n = child
		if n.has {
			best = Entry[V]{Key: append([]symbol.Label(nil), key[:i+1]...), Value: n.value}
		}
	}
	return best
}

func (n *node[V]) child(l symbol.Label, create bool) *node[V] {
	if c, ok := n.children[l]; ok {
		return c
	}
	if !create {
		return nil
	}
	if n.children == nil {
		n.children = make(map[symbol.Label]*node[V])
	}
	c := &node[V]{}
	n.children[l] = c
	idx := sort.Search(len(n.childOrder), func(i int) bool { return n.childOrder[i] >= l })
	n.childOrder = append(n.childOrder, 0)
	copy(n.childOrder[idx+1:], n.childOrder[idx:])
	n.childOrder[idx] = l
	return c
}

func (n *node[V]) walk(prefix []symbol.Label, visit func(Entry[V]) bool) bool {
	if n.has {
		key := append([]symbol.Label(nil), prefix...)
		if !visit(Entry[V]{Key: key, Value: n.value}) {
			return false
		}
	}
	for _, l := range n.childOrder {
		child := n.children[l]
		if !child.walk(append(prefix, l), visit) {
			return false
		}
	}
	return true
}

package ordmap

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordcoll"
	"github.com/npillmayer/ordcoll/compare"
	"github.com/npillmayer/ordcoll/maybe"
	"github.com/npillmayer/ordcoll/persistent/rbtree"
	"golang.org/x/exp/constraints"
)

// Map is a persistent map with keys ordered by a comparator.
type Map[K, V any] struct {
	tree rbtree.Tree[K, V]
}

// Option is an option for creating maps. See package rbtree for available options.
type Option = rbtree.Option

// Empty creates an empty map ordered by cmp.
func Empty[K, V any](cmp compare.Func[K], opts ...Option) Map[K, V] {
	return Map[K, V]{tree: rbtree.Immutable[K, V](cmp, opts...)}
}

// EmptyOrdered creates an empty map for a naturally ordered key type.
// Floating point NaN keys sort after all other keys.
func EmptyOrdered[K constraints.Ordered, V any](opts ...Option) Map[K, V] {
	return Empty[K, V](compare.Natural[K](), opts...)
}

// Of creates a map with a single entry.
func Of[K, V any](key K, value V, cmp compare.Func[K], opts ...Option) Map[K, V] {
	return Empty[K, V](cmp, opts...).Insert(key, value)
}

// From creates a map from a sequence of key/value pairs, inserting them in order.
// For duplicate keys the last value wins.
func From[K, V any](seq iter.Seq2[K, V], cmp compare.Func[K], opts ...Option) Map[K, V] {
	m := Empty[K, V](cmp, opts...)
	for k, v := range seq {
		m = m.Insert(k, v)
	}
	return m
}

// FromPairs creates a map from a slice of pairs, inserting them in order.
// For duplicate keys the last value wins.
func FromPairs[K, V any](pairs []ordcoll.Pair[K, V], cmp compare.Func[K], opts ...Option) Map[K, V] {
	m := Empty[K, V](cmp, opts...)
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// FromOrdered creates a map for a naturally ordered key type from a slice of pairs.
func FromOrdered[K constraints.Ordered, V any](pairs []ordcoll.Pair[K, V], opts ...Option) Map[K, V] {
	return FromPairs(pairs, compare.Natural[K](), opts...)
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of entries in m.
func (m Map[K, V]) Len() int {
	return m.tree.Len()
}

// Comparator returns the comparator ordering the keys of m.
func (m Map[K, V]) Comparator() compare.Func[K] {
	return m.tree.Compare()
}

// Find returns the value associated with key, if present.
func (m Map[K, V]) Find(key K) (V, bool) {
	return m.tree.Find(key)
}

// Has is true if key is present in m.
func (m Map[K, V]) Has(key K) bool {
	return m.tree.Has(key)
}

// Min returns the entry with the smallest key, or Nothing if m is empty.
func (m Map[K, V]) Min() maybe.Maybe[ordcoll.Pair[K, V]] {
	return m.tree.Min()
}

// Max returns the entry with the greatest key, or Nothing if m is empty.
func (m Map[K, V]) Max() maybe.Maybe[ordcoll.Pair[K, V]] {
	return m.tree.Max()
}

// --- Modification ----------------------------------------------------------

// Insert returns a copy of m with key associated to value. An existing
// association for key is replaced.
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	return Map[K, V]{tree: m.tree.With(key, value)}
}

// Remove returns a copy of m without key. If key is not present, m itself is returned.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	return Map[K, V]{tree: m.tree.WithDeleted(key)}
}

// --- Traversal -------------------------------------------------------------

// All returns a sequence of the entries of m in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Backward returns a sequence of the entries of m in descending key order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.tree.Backward()
}

// Iterator returns a one-shot iterator over the entries of m in ascending key order.
func (m Map[K, V]) Iterator() *rbtree.Iterator[K, V] {
	return m.tree.Iterator()
}

// ReverseIterator returns a one-shot iterator over the entries of m in descending key order.
func (m Map[K, V]) ReverseIterator() *rbtree.Iterator[K, V] {
	return m.tree.ReverseIterator()
}

// Keys returns the keys of m in ascending order.
func (m Map[K, V]) Keys() []K {
	return collect(m, rbtree.KeyOf[K, V])
}

// Values returns the values of m in ascending order of their keys.
func (m Map[K, V]) Values() []V {
	return collect(m, rbtree.ValueOf[K, V])
}

// ToSlice returns the entries of m in ascending key order.
func (m Map[K, V]) ToSlice() []ordcoll.Pair[K, V] {
	return collect(m, rbtree.PairOf[K, V])
}

func collect[K, V, T any](m Map[K, V], f func(*rbtree.Node[K, V]) T) []T {
	s := make([]T, 0, m.Len())
	for x := range rbtree.Project(m.tree.Iterator(), f) {
		s = append(s, x)
	}
	return s
}

// FoldL folds the entries of m in ascending key order, starting with zero.
func FoldL[K, V, A any](m Map[K, V], zero A, f func(A, K, V) A) A {
	return rbtree.FoldL(m.tree, zero, f)
}

// FoldR folds the entries of m in descending key order, starting with zero.
func FoldR[K, V, A any](m Map[K, V], zero A, f func(K, V, A) A) A {
	return rbtree.FoldR(m.tree, zero, f)
}

// --- Output ----------------------------------------------------------------

func (m Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes m as an array of [key, value] arrays in ascending key order.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([][2]interface{}, 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, [2]interface{}{k, v})
	}
	return json.Marshal(entries)
}

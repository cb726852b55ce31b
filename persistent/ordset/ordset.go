package ordset

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

// Set is a persistent set of keys ordered by a comparator.
type Set[K any] struct {
	tree rbtree.Tree[K, ordcoll.Unit]
}

// Option is an option for creating sets. See package rbtree for available options.
type Option = rbtree.Option

var unit = ordcoll.Unit{}

// Empty creates an empty set ordered by cmp.
func Empty[K any](cmp compare.Func[K], opts ...Option) Set[K] {
	return Set[K]{tree: rbtree.Immutable[K, ordcoll.Unit](cmp, opts...)}
}

// EmptyOrdered creates an empty set for a naturally ordered key type.
func EmptyOrdered[K constraints.Ordered](opts ...Option) Set[K] {
	return Empty[K](compare.Natural[K](), opts...)
}

// Of creates a set with a single key.
func Of[K any](key K, cmp compare.Func[K], opts ...Option) Set[K] {
	return Empty(cmp, opts...).Insert(key)
}

// From creates a set from a sequence of keys.
func From[K any](seq iter.Seq[K], cmp compare.Func[K], opts ...Option) Set[K] {
	s := Empty(cmp, opts...)
	for k := range seq {
		s = s.Insert(k)
	}
	return s
}

// FromSlice creates a set from a slice of keys.
func FromSlice[K any](keys []K, cmp compare.Func[K], opts ...Option) Set[K] {
	s := Empty(cmp, opts...)
	for _, k := range keys {
		s = s.Insert(k)
	}
	return s
}

// FromOrdered creates a set for a naturally ordered key type from a slice of keys.
func FromOrdered[K constraints.Ordered](keys []K, opts ...Option) Set[K] {
	return FromSlice(keys, compare.Natural[K](), opts...)
}

// Len returns the number of keys in s.
func (s Set[K]) Len() int {
	return s.tree.Len()
}

// Comparator returns the comparator ordering the keys of s.
func (s Set[K]) Comparator() compare.Func[K] {
	return s.tree.Compare()
}

// Has is true if key is a member of s.
func (s Set[K]) Has(key K) bool {
	return s.tree.Has(key)
}

// Min returns the smallest key of s, or Nothing if s is empty.
func (s Set[K]) Min() maybe.Maybe[K] {
	return maybe.Map(ordcoll.Key[K, ordcoll.Unit], s.tree.Min())
}

// Max returns the greatest key of s, or Nothing if s is empty.
func (s Set[K]) Max() maybe.Maybe[K] {
	return maybe.Map(ordcoll.Key[K, ordcoll.Unit], s.tree.Max())
}

// Insert returns a copy of s including key.
func (s Set[K]) Insert(key K) Set[K] {
	return Set[K]{tree: s.tree.With(key, unit)}
}

// Remove returns a copy of s without key. If key is not a member, s itself is returned.
func (s Set[K]) Remove(key K) Set[K] {
	return Set[K]{tree: s.tree.WithDeleted(key)}
}

// All returns a sequence of the keys of s in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Backward returns a sequence of the keys of s in descending order.
func (s Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Iterator returns a one-shot iterator over the keys of s in ascending order.
func (s Set[K]) Iterator() *rbtree.Iterator[K, ordcoll.Unit] {
	return s.tree.Iterator()
}

// ReverseIterator returns a one-shot iterator over the keys of s in descending order.
func (s Set[K]) ReverseIterator() *rbtree.Iterator[K, ordcoll.Unit] {
	return s.tree.ReverseIterator()
}

// ToSlice returns the keys of s in ascending order.
func (s Set[K]) ToSlice() []K {
	keys := make([]K, 0, s.Len())
	for k := range rbtree.Project(s.tree.Iterator(), rbtree.KeyOf[K, ordcoll.Unit]) {
		keys = append(keys, k)
	}
	return keys
}

// FoldL folds the keys of s in ascending order, starting with zero.
func FoldL[K, A any](s Set[K], zero A, f func(A, K) A) A {
	return rbtree.FoldL(s.tree, zero, func(acc A, k K, _ ordcoll.Unit) A {
		return f(acc, k)
	})
}

// FoldR folds the keys of s in descending order, starting with zero.
func FoldR[K, A any](s Set[K], zero A, f func(K, A) A) A {
	return rbtree.FoldR(s.tree, zero, func(k K, _ ordcoll.Unit, acc A) A {
		return f(k, acc)
	})
}

func (s Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", k)
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes s as an array of keys in ascending order.
func (s Set[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// --- Set algebra -----------------------------------------------------------

// Union returns a set with the keys of both s and other.
func (s Set[K]) Union(other Set[K]) Set[K] {
	s.checkComparator(other, "union")
	if other.Len() == 0 {
		return s
	}
	if s.tree.Compare() == nil { // zero value
		return other
	}
	return FoldL(other, s, Set[K].Insert)
}

// Intersect returns a set with the keys present in both s and other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	s.checkComparator(other, "intersect")
	return FoldL(other, s.accumulator(other), func(acc Set[K], k K) Set[K] {
		if s.Has(k) {
			return acc.Insert(k)
		}
		return acc
	})
}

// Difference returns the symmetric difference of s and other, i.e. the keys
// present in exactly one of both sets.
func (s Set[K]) Difference(other Set[K]) Set[K] {
	s.checkComparator(other, "difference")
	onlyIn := func(probe Set[K]) func(Set[K], K) Set[K] {
		return func(acc Set[K], k K) Set[K] {
			if probe.Has(k) {
				return acc
			}
			return acc.Insert(k)
		}
	}
	diff := FoldL(s, s.accumulator(other), onlyIn(other))
	return FoldL(other, diff, onlyIn(s))
}

// accumulator returns an empty set with the comparator and options of s, or of
// other if s is the zero value.
func (s Set[K]) accumulator(other Set[K]) Set[K] {
	if s.tree.Compare() == nil {
		return Set[K]{tree: other.tree.Empty()}
	}
	return Set[K]{tree: s.tree.Empty()}
}

func (s Set[K]) checkComparator(other Set[K], op string) {
	if s.tree.IsQuiet() || s.tree.Compare() == nil || other.tree.Compare() == nil {
		return
	}
	if !compare.Same(s.tree.Compare(), other.tree.Compare()) {
		tracer().Infof("warning: %s of sets with different comparators; "+
			"the result may be inconsistent. Consider using the same comparator for both sets", op)
	}
}

package rbtree

import (
	"iter"

	"github.com/npillmayer/ordcoll"
	"github.com/npillmayer/ordcoll/compare"
	"github.com/npillmayer/ordcoll/maybe"
)

// Tree is a persistent red-black tree, binding a root node to a comparator.
// Trees are values; every modification returns a new tree and leaves the
// receiver untouched:
//
//	tree := rbtree.Immutable[int, string](compare.Ordered[int])
//	tree = tree.With(42, "Galaxy")
//	value, found := tree.Find(42)   // returns "Galaxy"
type Tree[K, V any] struct {
	props
	compare compare.Func[K]
	root    *Node[K, V]
}

// props holds the options of a tree.
type props struct {
	checked bool // verify invariants after every modification
	quiet   bool // suppress diagnostics
}

// Immutable constructs an empty tree ordered by cmp, with options, if you need any.
func Immutable[K, V any](cmp compare.Func[K], opts ...Option) Tree[K, V] {
	assertThat(cmp != nil, "tree needs a comparator")
	tree := Tree[K, V]{compare: cmp}
	for _, option := range opts {
		tree.props = option.config(tree.props)
	}
	return tree
}

// Option is a type to help initializing trees at creation time.
type Option struct {
	config func(props) props
}

// CheckInvariants is an option to verify the red-black invariants after every
// modification of a tree. A violation is a defect of this package and panics.
// Checking is O(n) per modification; use it for debugging and testing only.
//
//	tree := rbtree.Immutable[int, int](compare.Ordered[int], rbtree.CheckInvariants())
func CheckInvariants() Option {
	return Option{config: func(p props) props {
		p.checked = true
		return p
	}}
}

// Quiet is an option to suppress diagnostic warnings, e.g. when combining
// collections with different comparators.
func Quiet() Option {
	return Option{config: func(p props) props {
		p.quiet = true
		return p
	}}
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries in tree.
func (tree Tree[K, V]) Len() int {
	return tree.root.Size()
}

// Root returns the root node of tree, which is nil for an empty tree.
func (tree Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Compare returns the comparator of tree.
func (tree Tree[K, V]) Compare() compare.Func[K] {
	return tree.compare
}

// IsChecked is true if tree verifies its invariants after every modification.
func (tree Tree[K, V]) IsChecked() bool {
	return tree.checked
}

// IsQuiet is true if diagnostics are suppressed for tree.
func (tree Tree[K, V]) IsQuiet() bool {
	return tree.quiet
}

// Empty returns an empty tree with the comparator and options of tree.
func (tree Tree[K, V]) Empty() Tree[K, V] {
	tree.root = nil
	return tree
}

// Find locates a key in a tree, if present, and returns the value associated with the key.
// If `key` is not found, the zero value for type V will be returned, together with found=false.
func (tree Tree[K, V]) Find(key K) (V, bool) {
	if n := Find(tree.compare, tree.root, key); n != nil {
		return n.value, true
	}
	var none V
	return none, false
}

// Has is true if key is present in tree.
func (tree Tree[K, V]) Has(key K) bool {
	return Find(tree.compare, tree.root, key) != nil
}

// Min returns the entry with the smallest key, or Nothing for an empty tree.
func (tree Tree[K, V]) Min() maybe.Maybe[ordcoll.Pair[K, V]] {
	if n := tree.root.Min(); n != nil {
		return maybe.Just(ordcoll.P(n.key, n.value))
	}
	return maybe.Nothing[ordcoll.Pair[K, V]]()
}

// Max returns the entry with the greatest key, or Nothing for an empty tree.
func (tree Tree[K, V]) Max() maybe.Maybe[ordcoll.Pair[K, V]] {
	if n := tree.root.Max(); n != nil {
		return maybe.Just(ordcoll.P(n.key, n.value))
	}
	return maybe.Nothing[ordcoll.Pair[K, V]]()
}

// With returns a copy of a tree with a new key inserted, which is associated with `value`.
// If an entry for key is already present in tree, the associated value will be replaced
// (in a new incarnation of the tree, nevertheless).
func (tree Tree[K, V]) With(key K, value V) Tree[K, V] {
	assertThat(tree.compare != nil, "tree has no comparator; use rbtree.Immutable")
	tree.root = Insert(tree.compare, tree.root, key, value)
	tree.verify("insert")
	return tree
}

// WithDeleted returns a copy of a tree with key deleted, if present, together with its
// associated value. If key is not found, tree is returned unchanged.
func (tree Tree[K, V]) WithDeleted(key K) Tree[K, V] {
	if tree.root == nil {
		return tree
	}
	root := Remove(tree.compare, tree.root, key)
	if root == tree.root {
		tracer().Debugf("delete: key %v not found, tree unchanged", key)
		return tree
	}
	tree.root = root
	tree.verify("delete")
	return tree
}

func (tree Tree[K, V]) verify(op string) {
	if !tree.checked {
		return
	}
	if err := tree.Check(); err != nil {
		tracer().Errorf("%s: %v", op, err)
		assertThat(false, "%s corrupted tree: %v", op, err)
	}
}

// --- Traversal -------------------------------------------------------------

// Iterator returns an iterator over the entries of tree in ascending key order.
func (tree Tree[K, V]) Iterator() *Iterator[K, V] {
	return NewIterator(tree.root)
}

// ReverseIterator returns an iterator over the entries of tree in descending key order.
func (tree Tree[K, V]) ReverseIterator() *Iterator[K, V] {
	return NewReverseIterator(tree.root)
}

// All returns a sequence of the entries of tree in ascending key order.
// Every iteration over the sequence starts a new traversal.
func (tree Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := NewIterator(tree.root)
		for it.Next() {
			if !yield(it.current.key, it.current.value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the entries of tree in descending key order.
func (tree Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := NewReverseIterator(tree.root)
		for it.Next() {
			if !yield(it.current.key, it.current.value) {
				return
			}
		}
	}
}

// FoldL folds the entries of tree in ascending order, starting with zero.
func FoldL[K, V, A any](tree Tree[K, V], zero A, f func(A, K, V) A) A {
	acc := zero
	it := NewIterator(tree.root)
	for it.Next() {
		acc = f(acc, it.current.key, it.current.value)
	}
	return acc
}

// FoldR folds the entries of tree in descending order, starting with zero, i.e.
// the rightmost entry is combined with zero first.
func FoldR[K, V, A any](tree Tree[K, V], zero A, f func(K, V, A) A) A {
	acc := zero
	it := NewReverseIterator(tree.root)
	for it.Next() {
		acc = f(it.current.key, it.current.value, acc)
	}
	return acc
}

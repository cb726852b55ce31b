package rbtree

import (
	"iter"

	"github.com/npillmayer/ordcoll"
)

// nodeStack holds the ancestors of the current iterator position whose
// remaining subtree has not yet been visited.
type nodeStack[K, V any] []*Node[K, V]

func (s *nodeStack[K, V]) push(n *Node[K, V]) {
	*s = append(*s, n)
}

func (s *nodeStack[K, V]) pop() *Node[K, V] {
	top := (*s)[len(*s)-1]
	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]
	return top
}

func (s nodeStack[K, V]) empty() bool {
	return len(s) == 0
}

// Iterator walks a tree in-order (ascending keys) or in reverse order.
// Iterators are lazy and one-shot: once exhausted they stay exhausted.
//
// Use it like this:
//
//	it := tree.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Key(), it.Value())
//	}
type Iterator[K, V any] struct {
	stack   nodeStack[K, V]
	reverse bool
	current *Node[K, V]
}

// NewIterator creates an in-order iterator for the tree rooted at root.
func NewIterator[K, V any](root *Node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{stack: make(nodeStack[K, V], 0, stackDepth(root))}
	it.pushSpine(root)
	return it
}

// NewReverseIterator creates a reverse in-order iterator for the tree rooted at root.
func NewReverseIterator[K, V any](root *Node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{
		stack:   make(nodeStack[K, V], 0, stackDepth(root)),
		reverse: true,
	}
	it.pushSpine(root)
	return it
}

// stackDepth estimates the height of a red-black tree with root.Size() nodes,
// which is at most 2·log₂(n+1).
func stackDepth[K, V any](root *Node[K, V]) int {
	h := 0
	for n := root.Size() + 1; n > 1; n >>= 1 {
		h++
	}
	return 2 * h
}

// pushSpine pushes n and its chain of left descendants (right descendants for
// reverse iterators).
func (it *Iterator[K, V]) pushSpine(n *Node[K, V]) {
	for n != nil {
		it.stack.push(n)
		if it.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Next advances the iterator to the next node. It returns false when the
// iterator is exhausted.
func (it *Iterator[K, V]) Next() bool {
	if it.stack.empty() {
		it.current = nil
		return false
	}
	n := it.stack.pop()
	if it.reverse {
		it.pushSpine(n.left)
	} else {
		it.pushSpine(n.right)
	}
	it.current = n
	return true
}

// Node returns the node at the current position, or nil if Next has not been
// called or the iterator is exhausted.
func (it *Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K {
	assertThat(it.current != nil, "iterator has no current position")
	return it.current.key
}

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V {
	assertThat(it.current != nil, "iterator has no current position")
	return it.current.value
}

// Pair returns key and value at the current position.
func (it *Iterator[K, V]) Pair() ordcoll.Pair[K, V] {
	assertThat(it.current != nil, "iterator has no current position")
	return ordcoll.P(it.current.key, it.current.value)
}

// Project returns the remaining nodes of it as a sequence, projected by f.
// As iterators are one-shot, so is the resulting sequence.
func Project[K, V, T any](it *Iterator[K, V], f func(*Node[K, V]) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(f(it.current)) {
				return
			}
		}
	}
}

// KeyOf projects a node onto its key.
func KeyOf[K, V any](n *Node[K, V]) K {
	return n.key
}

// ValueOf projects a node onto its value.
func ValueOf[K, V any](n *Node[K, V]) V {
	return n.value
}

// PairOf projects a node onto a key/value pair.
func PairOf[K, V any](n *Node[K, V]) ordcoll.Pair[K, V] {
	return ordcoll.P(n.key, n.value)
}

package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordcoll/compare"
)

// Color is the color of a tree node.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Node is a node of a red-black tree. The empty tree is represented by a nil *Node.
// Methods of Node accept a nil receiver, the empty node being black and of
// size 0, except Key and Value: the empty node carries no entry.
//
// Nodes are immutable.
type Node[K, V any] struct {
	key   K
	value V
	left  *Node[K, V]
	right *Node[K, V]
	color Color
	size  int
}

// node creates a new node. The size of the subtree rooted at the new node is
// computed from its children.
func node[K, V any](color Color, key K, value V, left, right *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
		left:  left,
		right: right,
		color: color,
		size:  1 + left.Size() + right.Size(),
	}
}

// Leaf creates a single red node without children.
func Leaf[K, V any](key K, value V) *Node[K, V] {
	return node[K, V](Red, key, value, nil, nil)
}

// Key returns the key of n. Calling Key on the empty node panics.
func (n *Node[K, V]) Key() K {
	assertThat(n != nil, "empty node has no key")
	return n.key
}

// Value returns the value of n. Calling Value on the empty node panics.
func (n *Node[K, V]) Value() V {
	assertThat(n != nil, "empty node has no value")
	return n.value
}

func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Color returns the color of n. The empty node is black.
func (n *Node[K, V]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[K, V]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// IsEmpty is true for the empty node.
func (n *Node[K, V]) IsEmpty() bool {
	return n == nil
}

func (n *Node[K, V]) String() string {
	if n == nil {
		return "∅"
	}
	return fmt.Sprintf("%v:%v(%s)", n.key, n.value, n.color)
}

func (n *Node[K, V]) isRed() bool {
	return n != nil && n.color == Red
}

// isBlackNode is true for non-empty black nodes only.
func (n *Node[K, V]) isBlackNode() bool {
	return n != nil && n.color == Black
}

// --- Queries ---------------------------------------------------------------

// Find locates key in the tree rooted at root and returns its node, or nil if
// key is not present.
func Find[K, V any](cmp compare.Func[K], root *Node[K, V], key K) *Node[K, V] {
	n := root
	for n != nil {
		c := cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the leftmost node of the subtree rooted at n, or nil for the empty tree.
func (n *Node[K, V]) Min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n, or nil for the empty tree.
func (n *Node[K, V]) Max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// --- Recoloring ------------------------------------------------------------

func blacken[K, V any](n *Node[K, V]) *Node[K, V] {
	if n.isRed() {
		return node(Black, n.key, n.value, n.left, n.right)
	}
	return n
}

func redden[K, V any](n *Node[K, V]) *Node[K, V] {
	assertThat(n != nil, "cannot redden the empty node")
	if n.color == Red {
		return n
	}
	return node(Red, n.key, n.value, n.left, n.right)
}

// subl turns a black node red. It is called during deletion on nodes which are
// black by construction; a red or empty node signals a corrupted tree.
func subl[K, V any](n *Node[K, V]) *Node[K, V] {
	assertThat(n != nil, "invariant violation: expected black node, got empty node")
	assertThat(n.color == Black, "invariant violation: expected black, got red")
	return node(Red, n.key, n.value, n.left, n.right)
}

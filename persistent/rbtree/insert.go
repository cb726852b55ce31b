package rbtree

import "github.com/npillmayer/ordcoll/compare"

// Insert returns the root of a new tree with key associated to value. If key is
// already present, its value is replaced and the node keeps its color. The tree
// rooted at root is left unchanged. The returned root is always black.
func Insert[K, V any](cmp compare.Func[K], root *Node[K, V], key K, value V) *Node[K, V] {
	return blacken(ins(cmp, root, key, value))
}

// ins inserts key on the path to its position, rebalancing on the way back up.
// The result may have a red root with a red child; this is repaired by the parent
// or, at the top, by blackening the root.
func ins[K, V any](cmp compare.Func[K], n *Node[K, V], key K, value V) *Node[K, V] {
	if n == nil {
		return Leaf(key, value)
	}
	c := cmp(key, n.key)
	switch {
	case c < 0:
		return balanceLeft(n.color, n.key, n.value, ins(cmp, n.left, key, value), n.right)
	case c > 0:
		return balanceRight(n.color, n.key, n.value, n.left, ins(cmp, n.right, key, value))
	}
	return node(n.color, key, value, n.left, n.right)
}

// balanceLeft resolves a red-red conflict in the left subtree l of a node z:
//
//	    z             z                y
//	   / \           / \             /   \
//	  y   d    or   x   d    ⇒     x     z
//	 / \           / \            / \   / \
//	x   c         a   y          a   b c   d
//
// with y red on top and x, z black.
func balanceLeft[K, V any](color Color, z K, zv V, l, d *Node[K, V]) *Node[K, V] {
	if l.isRed() {
		if l.left.isRed() {
			x, y := l.left, l
			return node(Red, y.key, y.value,
				node(Black, x.key, x.value, x.left, x.right),
				node(Black, z, zv, y.right, d))
		}
		if l.right.isRed() {
			x, y := l, l.right
			return node(Red, y.key, y.value,
				node(Black, x.key, x.value, x.left, y.left),
				node(Black, z, zv, y.right, d))
		}
	}
	return node(color, z, zv, l, d)
}

// balanceRight is the mirror image of balanceLeft, for a conflict in the right
// subtree r of a node x.
func balanceRight[K, V any](color Color, x K, xv V, a, r *Node[K, V]) *Node[K, V] {
	if r.isRed() {
		if r.left.isRed() {
			y, z := r.left, r
			return node(Red, y.key, y.value,
				node(Black, x, xv, a, y.left),
				node(Black, z.key, z.value, y.right, z.right))
		}
		if r.right.isRed() {
			y, z := r, r.right
			return node(Red, y.key, y.value,
				node(Black, x, xv, a, y.left),
				node(Black, z.key, z.value, z.left, z.right))
		}
	}
	return node(color, x, xv, a, r)
}

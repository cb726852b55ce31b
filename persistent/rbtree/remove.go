package rbtree

import "github.com/npillmayer/ordcoll/compare"

// Remove returns the root of a new tree without key. If key is not present, root
// itself is returned and nothing is allocated. The tree rooted at root is left
// unchanged.
func Remove[K, V any](cmp compare.Func[K], root *Node[K, V], key K) *Node[K, V] {
	n, found := del(cmp, root, key)
	if !found {
		return root
	}
	return blacken(n)
}

// del removes key from the subtree rooted at n. Removing from a black subtree
// lowers its black-height by one, which is repaired by balLeft or balRight.
// If key is not present, del returns n unchanged and found=false; new nodes are
// created on the way back up only, so a failed search allocates nothing.
func del[K, V any](cmp compare.Func[K], n *Node[K, V], key K) (*Node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	c := cmp(key, n.key)
	switch {
	case c < 0:
		l, found := del(cmp, n.left, key)
		if !found {
			return n, false
		}
		if n.left.isBlackNode() {
			return balLeft(n.key, n.value, l, n.right), true
		}
		return node(Red, n.key, n.value, l, n.right), true
	case c > 0:
		r, found := del(cmp, n.right, key)
		if !found {
			return n, false
		}
		if n.right.isBlackNode() {
			return balRight(n.key, n.value, n.left, r), true
		}
		return node(Red, n.key, n.value, n.left, r), true
	}
	return join(n.left, n.right), true
}

// balLeft rebuilds a node x, where the left subtree tl has a black-height one
// less than that of the right subtree tr.
func balLeft[K, V any](x K, xv V, tl, tr *Node[K, V]) *Node[K, V] {
	switch {
	case tl.isRed():
		return node(Red, x, xv, blacken(tl), tr)
	case tr.isBlackNode():
		return balance(x, xv, tl, redden(tr))
	case tr.isRed() && tr.left.isBlackNode():
		y, z := tr.left, tr
		return node(Red, y.key, y.value,
			node(Black, x, xv, tl, y.left),
			balance(z.key, z.value, y.right, subl(z.right)))
	}
	assertThat(false, "invariant violation: cannot balance left at %v", x)
	return nil
}

// balRight is the mirror image of balLeft: the right subtree tr has lost one
// level of black-height.
func balRight[K, V any](x K, xv V, tl, tr *Node[K, V]) *Node[K, V] {
	switch {
	case tr.isRed():
		return node(Red, x, xv, tl, blacken(tr))
	case tl.isBlackNode():
		return balance(x, xv, redden(tl), tr)
	case tl.isRed() && tl.right.isBlackNode():
		y, z := tl, tl.right
		return node(Red, z.key, z.value,
			balance(y.key, y.value, subl(y.left), z.left),
			node(Black, x, xv, z.right, tr))
	}
	assertThat(false, "invariant violation: cannot balance right at %v", x)
	return nil
}

// balance creates a black node x from tl and tr, resolving a red-red conflict in
// either subtree. If both subtrees have red roots, the result is a red node with
// both subtrees blackened.
func balance[K, V any](x K, xv V, tl, tr *Node[K, V]) *Node[K, V] {
	switch {
	case tl.isRed() && tr.isRed():
		return node(Red, x, xv, blacken(tl), blacken(tr))
	case tl.isRed() && tl.left.isRed():
		a := tl.left
		return node(Red, tl.key, tl.value,
			blacken(a),
			node(Black, x, xv, tl.right, tr))
	case tl.isRed() && tl.right.isRed():
		b := tl.right
		return node(Red, b.key, b.value,
			node(Black, tl.key, tl.value, tl.left, b.left),
			node(Black, x, xv, b.right, tr))
	case tr.isRed() && tr.right.isRed():
		d := tr.right
		return node(Red, tr.key, tr.value,
			node(Black, x, xv, tl, tr.left),
			blacken(d))
	case tr.isRed() && tr.left.isRed():
		c := tr.left
		return node(Red, c.key, c.value,
			node(Black, x, xv, tl, c.left),
			node(Black, tr.key, tr.value, c.right, tr.right))
	}
	return node(Black, x, xv, tl, tr)
}

// join merges two subtrees of equal black-height, where all keys of tl precede
// all keys of tr. It is used to close the gap left by a deleted inner node and
// walks down the right border of tl and the left border of tr.
func join[K, V any](tl, tr *Node[K, V]) *Node[K, V] {
	switch {
	case tl == nil:
		return tr
	case tr == nil:
		return tl
	case tl.isRed() && tr.isRed():
		bc := join(tl.right, tr.left)
		if bc.isRed() {
			return node(Red, bc.key, bc.value,
				node(Red, tl.key, tl.value, tl.left, bc.left),
				node(Red, tr.key, tr.value, bc.right, tr.right))
		}
		return node(Red, tl.key, tl.value, tl.left, node(Red, tr.key, tr.value, bc, tr.right))
	case tl.isBlackNode() && tr.isBlackNode():
		bc := join(tl.right, tr.left)
		if bc.isRed() {
			return node(Red, bc.key, bc.value,
				node(Black, tl.key, tl.value, tl.left, bc.left),
				node(Black, tr.key, tr.value, bc.right, tr.right))
		}
		return balLeft(tl.key, tl.value, tl.left, node(Black, tr.key, tr.value, bc, tr.right))
	case tr.isRed():
		return node(Red, tr.key, tr.value, join(tl, tr.left), tr.right)
	}
	// tl is red, tr is black
	return node(Red, tl.key, tl.value, tl.left, join(tl.right, tr))
}

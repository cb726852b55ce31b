package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordcoll/compare"
)

// Check verifies the invariants of tree:
//
//	■ the root is black,
//	■ no red node has a red child,
//	■ every path from a node to an empty leaf contains the same number of black nodes,
//	■ keys are strictly increasing in-order,
//	■ the cached size of every node matches its subtree.
//
// It returns an error describing the first violation found, or nil.
func (tree Tree[K, V]) Check() error {
	return CheckNode(tree.compare, tree.root)
}

// CheckNode verifies the invariants of the tree rooted at root (see Tree.Check).
func CheckNode[K, V any](cmp compare.Func[K], root *Node[K, V]) error {
	if root.isRed() {
		return fmt.Errorf("root %v is red", root)
	}
	if _, err := checkColors(root); err != nil {
		return err
	}
	if cmp == nil {
		return nil
	}
	it := NewIterator(root)
	var prev *Node[K, V]
	for it.Next() {
		if prev != nil && cmp(prev.key, it.current.key) >= 0 {
			return fmt.Errorf("keys out of order: %v is not less than %v", prev.key, it.current.key)
		}
		prev = it.current
	}
	return nil
}

// BlackHeight returns the number of black nodes on the leftmost path from n to
// an empty leaf, not counting the empty leaf.
func (n *Node[K, V]) BlackHeight() int {
	h := 0
	for ; n != nil; n = n.left {
		if n.color == Black {
			h++
		}
	}
	return h
}

// checkColors returns the black-height of the subtree at n.
func checkColors[K, V any](n *Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		return 0, fmt.Errorf("red node %v has a red child", n)
	}
	if n.size != 1+n.left.Size()+n.right.Size() {
		return 0, fmt.Errorf("node %v has size %d, subtree has %d nodes", n,
			n.size, 1+n.left.Size()+n.right.Size())
	}
	lh, err := checkColors(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkColors(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("node %v has black-heights %d (left) and %d (right)", n, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}

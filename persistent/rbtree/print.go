package rbtree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders tree for debugging purposes, one node per line. Use it like this:
//
//	tracer().Debugf("tree = %s", tree)
func (tree Tree[K, V]) String() string {
	header := fmt.Sprintf("RBTree(len=%d, black-height=%d)\n", tree.Len(), tree.root.BlackHeight())
	printer := tp.New()
	printNode(printer, tree.root)
	return header + printer.String()
}

func printNode[K, V any](printer tp.Tree, n *Node[K, V]) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(n.String())
		return
	}
	branch := printer.AddBranch(n.String())
	for _, ch := range [2]*Node[K, V]{n.left, n.right} {
		if ch == nil {
			branch.AddNode("∅")
		} else {
			printNode(branch, ch)
		}
	}
}

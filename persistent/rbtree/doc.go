/*
Package rbtree implements a persistent (immutable) red-black tree.

Nodes are never modified after construction. Inserting or removing a key creates
new nodes along the path from the root to the point of modification, and shares
every untouched subtree with the previous incarnation of the tree. Clients holding
an older root continue to see an unchanged tree.

Insertion follows Okasaki's functional rebalancing, deletion follows Kahrs'
algorithm (“Red-black trees with types”, JFP 2001), which joins the subtrees of a
deleted inner node and repairs black-heights on the way back up.

In-order traversal is performed by iterators with an explicit stack of ancestors,
thus never recursing, regardless of the shape of a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordcoll.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordcoll.rbtree")
}

// assertThat panics if an invariant does not hold. A failing assertion is a defect
// of this package or a misuse of its API, e.g. a tree without a comparator.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}

package rbtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/ordcoll/compare"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var intcmp compare.Func[int] = compare.Ordered[int]

func TestEmptyNode(t *testing.T) {
	var empty *Node[int, int]
	if empty.Color() != Black {
		t.Error("expected empty node to be black, isn't")
	}
	if empty.Size() != 0 {
		t.Errorf("expected empty node to have size 0, has %d", empty.Size())
	}
	if empty.Min() != nil || empty.Max() != nil {
		t.Error("expected min/max of empty node to be absent")
	}
	if Find(intcmp, empty, 7) != nil {
		t.Error("did not expect to find 7 in empty tree")
	}
	if Remove(intcmp, empty, 7) != nil {
		t.Error("expected removal from empty tree to yield the empty tree")
	}
	if empty.String() != "∅" {
		t.Errorf("expected empty node to print as ∅, is %q", empty.String())
	}
}

func TestInsertSingle(t *testing.T) {
	root := Insert(intcmp, nil, 1, 10)
	if root == nil {
		t.Fatal("expected insert into empty tree to create a node")
	}
	if root.Color() != Black {
		t.Errorf("expected root to be black, is %s", root.Color())
	}
	if root.Size() != 1 || root.Key() != 1 || root.Value() != 10 {
		t.Errorf("unexpected root %v with size %d", root, root.Size())
	}
	if !root.Left().IsEmpty() || !root.Right().IsEmpty() {
		t.Error("expected single root to have no children")
	}
}

func TestInsertReplacesValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordcoll.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := buildRoot(5, 3, 8, 1, 4)
	size := root.Size()
	old := Find(intcmp, root, 3)
	root2 := Insert(intcmp, root, 3, 333)
	n := Find(intcmp, root2, 3)
	if n == nil || n.Value() != 333 {
		t.Fatalf("expected 3 to be associated with 333, is %v", n)
	}
	if n.Color() != old.Color() {
		t.Errorf("expected replaced node to keep color %s, is %s", old.Color(), n.Color())
	}
	if root2.Size() != size {
		t.Errorf("expected size to stay %d, is %d", size, root2.Size())
	}
	if Find(intcmp, root, 3).Value() != 3 {
		t.Error("expected original tree to be unchanged")
	}
}

func TestInsertRebalancesAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordcoll.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	var root *Node[int, int]
	for i := 1; i <= 3; i++ {
		root = Insert(intcmp, root, i, i)
	}
	// 1,2,3 must rotate into 2 on top of 1 and 3
	if root.Key() != 2 || root.Left().Key() != 1 || root.Right().Key() != 3 {
		t.Logf("tree =\n%s", Tree[int, int]{compare: intcmp, root: root})
		t.Fatal("expected ascending inserts 1,2,3 to be rotated to ⟨1 2 3⟩")
	}
	if err := CheckNode(intcmp, root); err != nil {
		t.Error(err)
	}
}

func TestFourInsertCases(t *testing.T) {
	// each triple triggers a different red-red pattern below a black grandparent
	for _, keys := range [][]int{
		{3, 2, 1}, // left-left
		{3, 1, 2}, // left-right
		{1, 3, 2}, // right-left
		{1, 2, 3}, // right-right
	} {
		root := buildRoot(keys...)
		if root.Key() != 2 || root.Color() != Black {
			t.Errorf("%v: expected black 2 on top, is %v", keys, root)
		}
		if root.Left().Color() != Black || root.Right().Color() != Black {
			t.Errorf("%v: expected black children after rebalancing", keys)
		}
		if err := CheckNode(intcmp, root); err != nil {
			t.Errorf("%v: %v", keys, err)
		}
	}
}

func TestStructuralSharing(t *testing.T) {
	root := buildRoot(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	root2 := Insert(intcmp, root, 100, 100)
	if root.Min() != root2.Min() {
		t.Error("expected leftmost node to be shared after inserting at the right")
	}
	root3 := Remove(intcmp, root2, 100)
	if Find(intcmp, root2, 100) == nil {
		t.Error("expected removal to leave the original tree untouched")
	}
	if Find(intcmp, root3, 100) != nil || root3.Size() != 10 {
		t.Error("expected 100 to be removed from the new tree")
	}
}

func TestSizeIsCached(t *testing.T) {
	root := buildRoot(9, 4, 7, 1, 8, 2, 6, 3, 5)
	var count func(*Node[int, int]) int
	count = func(n *Node[int, int]) int {
		if n == nil {
			return 0
		}
		return 1 + count(n.left) + count(n.right)
	}
	if root.Size() != 9 || count(root) != 9 {
		t.Errorf("expected size 9, is %d (counted %d)", root.Size(), count(root))
	}
}

func TestRemoveAbsentKeyReturnsSameRoot(t *testing.T) {
	root := buildRoot(1, 3, 5, 7)
	if Remove(intcmp, root, 4) != root {
		t.Error("expected removal of absent key to return the original root")
	}
}

func TestRemoveDescendsOnce(t *testing.T) {
	calls := 0
	counting := func(a, b int) int {
		calls++
		return intcmp(a, b)
	}
	root := buildRoot(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17)
	for _, key := range []int{1, 8, 17, 20} {
		calls = 0
		Find(counting, root, key)
		lookups := calls
		calls = 0
		Remove(counting, root, key)
		if calls != lookups {
			t.Errorf("expected removal of %d to compare %d times, as a lookup does, compared %d times",
				key, lookups, calls)
		}
	}
}

func TestRemoveInnerNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordcoll.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := buildRoot(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	top := root.Key()
	root2 := Remove(intcmp, root, top)
	if Find(intcmp, root2, top) != nil {
		t.Errorf("expected %d to be gone", top)
	}
	if root2.Size() != 14 {
		t.Errorf("expected 14 nodes after removal, have %d", root2.Size())
	}
	if err := CheckNode(intcmp, root2); err != nil {
		t.Logf("tree =\n%s", Tree[int, int]{compare: intcmp, root: root2})
		t.Error(err)
	}
}

func TestRemoveLastKey(t *testing.T) {
	root := buildRoot(1)
	if Remove(intcmp, root, 1) != nil {
		t.Error("expected removal of only key to yield the empty tree")
	}
}

func TestJoin(t *testing.T) {
	l := buildRoot(1, 2, 3)
	r := buildRoot(5, 6, 7)
	j := join(l, r)
	keys := collect(NewIterator(j))
	if !equalInts(keys, []int{1, 2, 3, 5, 6, 7}) {
		t.Errorf("expected join to contain 1…3,5…7 in order, is %v", keys)
	}
	if err := CheckNode(intcmp, blacken(j)); err != nil {
		t.Error(err)
	}
	if join[int, int](nil, r) != r || join[int, int](l, nil) != l {
		t.Error("expected join with empty tree to return the other tree")
	}
}

func TestSublPanicsOnRed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected subl to panic on a red node")
		}
		if !strings.Contains(r.(string), "expected black, got red") {
			t.Errorf("unexpected panic message %q", r)
		}
	}()
	subl(Leaf(1, 1))
}

func TestEmptyNodeHasNoEntry(t *testing.T) {
	it := NewIterator(buildRoot(1))
	for it.Next() {
	}
	if it.Node() != nil {
		t.Fatalf("expected exhausted iterator to have no node, has %v", it.Node())
	}
	for name, access := range map[string]func(){
		"key":   func() { it.Node().Key() },
		"value": func() { it.Node().Value() },
	} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected %s of empty node to panic", name)
				}
				if !strings.Contains(r.(string), "empty node has no "+name) {
					t.Errorf("unexpected panic message %q", r)
				}
			}()
			access()
		}()
	}
}

func TestSublReddensBlack(t *testing.T) {
	n := subl(node[int, int](Black, 1, 1, nil, nil))
	if n.Color() != Red {
		t.Error("expected subl to turn a black node red")
	}
}

// ---------------------------------------------------------------------------

func buildRoot(keys ...int) *Node[int, int] {
	var root *Node[int, int]
	for _, k := range keys {
		root = Insert(intcmp, root, k, k)
	}
	return root
}

func collect(it *Iterator[int, int]) []int {
	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

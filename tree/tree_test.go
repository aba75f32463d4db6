package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() (*Node[string], map[string]*Node[string]) {
	nodes := map[string]*Node[string]{}
	for _, name := range []string{"root", "a", "b", "c", "a1", "a2", "c1"} {
		nodes[name] = NewNode(name)
	}
	nodes["root"].AddChild(nodes["a"]).AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["a"].AddChild(nodes["a1"]).AddChild(nodes["a2"])
	nodes["c"].AddChild(nodes["c1"])
	return nodes["root"], nodes
}

func TestNodeNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlxot.tree")
	defer teardown()
	//
	root, nodes := buildTestTree()
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	if first, ok := root.FirstChild(); !ok || first != nodes["a"] {
		t.Errorf("expected first child to be a, is %v", first)
	}
	if last, ok := root.LastChild(); !ok || last != nodes["c"] {
		t.Errorf("expected last child to be c, is %v", last)
	}
	if next, ok := nodes["a"].NextSibling(); !ok || next != nodes["b"] {
		t.Errorf("expected next sibling of a to be b, is %v", next)
	}
	if prev, ok := nodes["b"].PrevSibling(); !ok || prev != nodes["a"] {
		t.Errorf("expected previous sibling of b to be a, is %v", prev)
	}
	if _, ok := nodes["c"].NextSibling(); ok {
		t.Error("did not expect c to have a next sibling")
	}
	if _, ok := root.PrevSibling(); ok {
		t.Error("did not expect root to have a previous sibling")
	}
	if nodes["a2"].Parent() != nodes["a"] {
		t.Errorf("expected parent of a2 to be a")
	}
}

func TestNodeIsolateClosesGap(t *testing.T) {
	root, nodes := buildTestTree()
	nodes["b"].Isolate()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children after isolate, has %d", root.ChildCount())
	}
	if next, ok := nodes["a"].NextSibling(); !ok || next != nodes["c"] {
		t.Errorf("expected next sibling of a to be c after isolating b, is %v", next)
	}
	if nodes["b"].Parent() != nil {
		t.Error("expected isolated node to have no parent")
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlxot.tree")
	defer teardown()
	//
	root, _ := buildTestTree()
	var order []string
	var depths []int
	err := Walk(root, func(n *Node[string], depth int) (bool, error) {
		order = append(order, n.Payload)
		depths = append(depths, depth)
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"root", "a", "a1", "a2", "b", "c", "c1"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d nodes, walked %d: %v", len(expected), len(order), order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
	if depths[2] != 2 || depths[4] != 1 {
		t.Errorf("unexpected depths %v", depths)
	}
}

func TestWalkPruneAndStop(t *testing.T) {
	root, _ := buildTestTree()
	var order []string
	_ = Walk(root, func(n *Node[string], depth int) (bool, error) {
		order = append(order, n.Payload)
		return n.Payload != "a", nil
	})
	if len(order) != 5 {
		t.Errorf("expected pruned walk to visit 5 nodes, visited %v", order)
	}
	stop := errors.New("stop")
	err := Walk(root, func(n *Node[string], depth int) (bool, error) {
		if n.Payload == "b" {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected walk to return action error, got %v", err)
	}
	if err := Walk[string](nil, nil); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree for nil root, got %v", err)
	}
}

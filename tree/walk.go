package tree

import "errors"

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes during a walk.
// depth is the distance from the start node, which has depth 0.
// Returning false prunes the walk below n; returning an error stops it.
type Action[T comparable] func(n *Node[T], depth int) (descend bool, err error)

type walkFrame[T comparable] struct {
	node  *Node[T]
	depth int
}

// Walk traverses the tree below (and including) root in document order,
// i.e. parents before children and children left to right.
//
// Walk does not recurse. It keeps an explicit stack of pending nodes,
// so very deep trees cost heap, not goroutine stack.
func Walk[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	stack := []walkFrame[T]{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		descend, err := action(top.node, top.depth)
		if err != nil {
			tracer().Debugf("tree walk stopped at depth %d: %v", top.depth, err)
			return err
		}
		if !descend {
			continue
		}
		children := top.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame[T]{node: children[i], depth: top.depth + 1})
		}
	}
	return nil
}

/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload and an ordered
list of children. Children lists are guarded by a mutex, so readers may
inspect a tree while another goroutine appends to it; higher level
invariants (like "no two adjacent text nodes") are left to the clients.

# Traversal

Walk visits a (sub-)tree in document order, using an explicit stack
instead of recursion:

	err := tree.Walk(root, func(n *tree.Node[P], depth int) (bool, error) {
	    ...
	    return true, nil // descend into children of n
	})

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlxot.tree'.
func tracer() tracing.Trace {
	return tracing.Select("htmlxot.tree")
}
